package presentation

import (
	"bufio"
	"fmt"
	"io"
)

// RenderText writes the route views as plain text, one block per option.
func RenderText(w io.Writer, views []RouteView) error {
	bw := bufio.NewWriter(w)
	if len(views) == 0 {
		fmt.Fprintln(bw, NoRoutesMessage)
		return bw.Flush()
	}

	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s [%s]\n", v.Title, v.StopsLabel)
		fmt.Fprintln(bw, v.Summary)
		for _, s := range v.Steps {
			fmt.Fprintf(bw, "  %s: %s (%s)\n", s.Title, s.Description, s.TransportationType)
		}
	}
	return bw.Flush()
}
