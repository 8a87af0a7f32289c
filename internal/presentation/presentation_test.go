package presentation

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyroute/route-console/internal/domain"
)

var (
	ist = domain.Location{ID: domain.ID(1), Name: "Istanbul Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST"}
	lhr = domain.Location{ID: domain.ID(2), Name: "London Airport", Country: "UK", City: "London", LocationCode: "LHR"}
	tks = domain.Location{ID: domain.ID(3), Name: "Taksim Square", Country: "Turkey", City: "Istanbul", LocationCode: "TKS"}
)

func segment(order int, from, to int64, typ domain.TransportationType) domain.RouteSegment {
	return domain.RouteSegment{
		Order: order,
		Transportation: domain.Transportation{
			OriginLocationID:      from,
			DestinationLocationID: to,
			TransportationType:    typ,
		},
	}
}

func TestLocationDirectory(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{
		ist,
		lhr,
		{Name: "Unsaved", LocationCode: "UNS"},
		{ID: domain.ID(1), Name: "Duplicate", LocationCode: "DUP"},
		{ID: domain.ID(4), LocationCode: "NON"},
	})

	assert.Equal(t, 3, dir.Len())
	assert.Equal(t, "Istanbul Airport (IST)", dir.Label(1))
	assert.Equal(t, "London Airport (LHR)", dir.Label(2))
	assert.Equal(t, "ID: 99", dir.Label(99))

	assert.Equal(t, "Istanbul Airport", dir.Name(1))
	assert.Equal(t, "ID: 99", dir.Name(99))
	assert.Equal(t, "ID: 4", dir.Name(4), "blank names fall back to the id")

	assert.Equal(t, []LocationOption{
		{ID: 1, Label: "Istanbul Airport (IST)"},
		{ID: 2, Label: "London Airport (LHR)"},
		{ID: 4, Label: " (NON)"},
	}, dir.Options())
}

func TestLocationDirectory_Nil(t *testing.T) {
	var dir *LocationDirectory
	assert.Equal(t, 0, dir.Len())
	assert.Equal(t, "ID: 7", dir.Label(7))
	assert.Equal(t, "ID: 7", dir.Name(7))
	assert.Empty(t, dir.Options())
}

func TestBuildRouteView_IstanbulToLondon(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{ist, lhr})
	r := domain.Route{
		Origin:      ist,
		Destination: lhr,
		Segments:    []domain.RouteSegment{segment(1, 1, 2, domain.TransportationFlight)},
	}

	views := BuildRouteViews([]domain.Route{r}, dir)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "Route Option 1", v.Title)
	assert.Equal(t, 1, v.Stops)
	assert.Equal(t, "1 Stop(s)", v.StopsLabel)
	assert.Equal(t, "From Istanbul Airport (IST) to London Airport (LHR)", v.Summary)
	require.Len(t, v.Steps, 1)
	assert.Equal(t, StepView{
		Step:               1,
		Title:              "Step 1",
		Order:              1,
		From:               "Istanbul Airport (IST)",
		To:                 "London Airport (LHR)",
		Description:        "Istanbul Airport (IST) → London Airport (LHR)",
		TransportationType: "FLIGHT",
	}, v.Steps[0])
}

func TestBuildRouteView_UnknownLocationFallsBackToID(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{ist, lhr})
	r := domain.Route{
		Origin:      tks,
		Destination: lhr,
		Segments: []domain.RouteSegment{
			segment(1, 3, 1, domain.TransportationBus),
			segment(2, 1, 2, domain.TransportationFlight),
		},
	}

	v := BuildRouteView(1, r, dir)
	assert.Equal(t, "Route Option 2", v.Title)
	assert.Equal(t, "2 Stop(s)", v.StopsLabel)
	assert.Equal(t, "From ID: 3 to London Airport (LHR)", v.Summary)
	assert.Equal(t, "ID: 3 → Istanbul Airport (IST)", v.Steps[0].Description)
	assert.Equal(t, "BUS", v.Steps[0].TransportationType)
	assert.Equal(t, "Step 2", v.Steps[1].Title)
}

func TestBuildRouteView_KeepsSegmentOrderAsReceived(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{ist, lhr, tks})
	r := domain.Route{
		Segments: []domain.RouteSegment{
			segment(2, 1, 2, domain.TransportationFlight),
			segment(1, 3, 1, domain.TransportationSubway),
		},
	}

	v := BuildRouteView(0, r, dir)
	assert.Equal(t, []int{2, 1}, []int{v.Steps[0].Order, v.Steps[1].Order})
	assert.Equal(t, "Step 1", v.Steps[0].Title)
	assert.Equal(t, "From Istanbul Airport (IST) to Istanbul Airport (IST)", v.Summary)
}

func TestBuildRouteView_NoSegments(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{ist, lhr})
	v := BuildRouteView(0, domain.Route{Origin: ist, Destination: lhr}, dir)
	assert.Equal(t, "0 Stop(s)", v.StopsLabel)
	assert.Equal(t, "From Istanbul Airport (IST) to London Airport (LHR)", v.Summary)
	assert.NotNil(t, v.Steps)
	assert.Empty(t, v.Steps)
}

func TestFormatOperatingDays(t *testing.T) {
	tests := []struct {
		name string
		days domain.OperatingDays
		want string
	}{
		{name: "nil is every day", days: nil, want: "All"},
		{name: "empty is every day", days: domain.OperatingDays{}, want: "All"},
		{name: "sorted", days: domain.OperatingDays{5, 1, 3}, want: "1, 3, 5"},
		{name: "single", days: domain.OperatingDays{7}, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOperatingDays(tt.days))
		})
	}
}

func TestBuildTransportationRows(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{ist, lhr})
	rows := BuildTransportationRows([]domain.Transportation{
		{ID: domain.ID(10), OriginLocationID: 1, DestinationLocationID: 2, TransportationType: domain.TransportationFlight, OperatingDays: domain.OperatingDays{5, 1, 3}},
		{ID: domain.ID(11), OriginLocationID: 3, DestinationLocationID: 1, TransportationType: domain.TransportationUber},
	}, dir)

	require.Len(t, rows, 2)
	assert.Equal(t, "Istanbul Airport", rows[0].Origin)
	assert.Equal(t, "London Airport", rows[0].Destination)
	assert.Equal(t, "1, 3, 5", rows[0].OperatingDays)
	assert.Equal(t, "FLIGHT", rows[0].TransportationType)
	assert.Equal(t, "ID: 3", rows[1].Origin)
	assert.Equal(t, "All", rows[1].OperatingDays)
	assert.Equal(t, int64(11), *rows[1].ID)
}

func TestRenderText(t *testing.T) {
	dir := NewLocationDirectory([]domain.Location{ist, lhr, tks})
	views := BuildRouteViews([]domain.Route{
		{Segments: []domain.RouteSegment{segment(1, 1, 2, domain.TransportationFlight)}},
		{Segments: []domain.RouteSegment{
			segment(1, 3, 1, domain.TransportationBus),
			segment(2, 1, 2, domain.TransportationFlight),
		}},
	}, dir)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, views))

	want := "Route Option 1 [1 Stop(s)]\n" +
		"From Istanbul Airport (IST) to London Airport (LHR)\n" +
		"  Step 1: Istanbul Airport (IST) → London Airport (LHR) (FLIGHT)\n" +
		"\n" +
		"Route Option 2 [2 Stop(s)]\n" +
		"From Taksim Square (TKS) to London Airport (LHR)\n" +
		"  Step 1: Taksim Square (TKS) → Istanbul Airport (IST) (BUS)\n" +
		"  Step 2: Istanbul Airport (IST) → London Airport (LHR) (FLIGHT)\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, nil))
	assert.Equal(t, "No routes found for your criteria.\n", buf.String())
}

func TestDirectoryLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := domain.NewMockLocationService(ctrl)

	loader := NewDirectoryLoader(service, 0, nil)
	assert.Equal(t, 0, loader.Current().Len(), "empty before the first load")

	gomock.InOrder(
		service.EXPECT().ListLocations(gomock.Any(), domain.FirstPage(DefaultLookupSize)).Return([]domain.Location{ist, lhr}, nil),
		service.EXPECT().ListLocations(gomock.Any(), gomock.Any()).Return(nil, &domain.APIError{Kind: domain.KindTransport}),
	)

	dir, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len())
	assert.Same(t, dir, loader.Current())

	kept, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransportFailure))
	assert.Same(t, dir, kept, "a failed load keeps the previous directory")
	assert.Same(t, dir, loader.Current())
}

func TestDirectoryLoader_ConcurrentReaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := domain.NewMockLocationService(ctrl)
	service.EXPECT().ListLocations(gomock.Any(), gomock.Any()).Return([]domain.Location{ist, lhr, tks}, nil).AnyTimes()

	loader := NewDirectoryLoader(service, 100, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = loader.Load(context.Background())
		}()
		go func() {
			defer wg.Done()
			n := loader.Current().Len()
			assert.True(t, n == 0 || n == 3, "readers see a whole directory")
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, loader.Current().Len())
}

func TestDirectoryLoader_StaleLoadDoesNotOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := domain.NewMockLocationService(ctrl)

	firstCalled := make(chan struct{})
	releaseFirst := make(chan struct{})
	gomock.InOrder(
		service.EXPECT().ListLocations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, domain.Page) ([]domain.Location, error) {
				close(firstCalled)
				<-releaseFirst
				return []domain.Location{ist}, nil
			}),
		service.EXPECT().ListLocations(gomock.Any(), gomock.Any()).Return([]domain.Location{ist, lhr, tks}, nil),
	)

	loader := NewDirectoryLoader(service, 10, nil)

	type result struct {
		dir *LocationDirectory
		err error
	}
	slow := make(chan result, 1)
	go func() {
		dir, err := loader.Load(context.Background())
		slow <- result{dir, err}
	}()
	<-firstCalled

	fresh, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Len())

	close(releaseFirst)
	got := <-slow
	require.NoError(t, got.err)
	assert.Same(t, fresh, got.dir, "the older load returns the newer directory")
	assert.Same(t, fresh, loader.Current())
}
