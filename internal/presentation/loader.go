package presentation

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/logger"
)

// DefaultLookupSize is the number of locations fetched to resolve labels.
const DefaultLookupSize = 100

// DirectoryLoader fetches the bounded location list and publishes it as a
// LocationDirectory. Readers always see a complete directory, and a load that
// finishes after a later-started one has published is discarded.
type DirectoryLoader struct {
	service domain.LocationService
	size    int
	log     *logger.Logger
	current atomic.Pointer[LocationDirectory]

	started atomic.Uint64

	mu        sync.Mutex
	published uint64 // generation of current
}

// NewDirectoryLoader creates a loader fetching the first size locations.
func NewDirectoryLoader(service domain.LocationService, size int, log *logger.Logger) *DirectoryLoader {
	if size <= 0 {
		size = DefaultLookupSize
	}
	if log == nil {
		log = logger.Nop()
	}
	l := &DirectoryLoader{
		service: service,
		size:    size,
		log:     log.WithComponent("location_directory"),
	}
	l.current.Store(NewLocationDirectory(nil))
	return l
}

// Load fetches the location list and replaces the current directory. On failure
// the previous directory stays in place and the error is returned. When a newer
// load has already published, the fetched list is dropped and the newer
// directory is returned.
func (l *DirectoryLoader) Load(ctx context.Context) (*LocationDirectory, error) {
	gen := l.started.Add(1)

	locations, err := l.service.ListLocations(ctx, domain.FirstPage(l.size))
	if err != nil {
		l.log.Warn().Err(err).Msg("Failed to fetch locations")
		return l.Current(), err
	}

	dir := NewLocationDirectory(locations)

	l.mu.Lock()
	if gen < l.published {
		newer := l.current.Load()
		l.mu.Unlock()
		l.log.Debug().Uint64("generation", gen).Msg("Discarded stale location directory")
		return newer, nil
	}
	l.published = gen
	l.current.Store(dir)
	l.mu.Unlock()

	l.log.Debug().Int("locations", dir.Len()).Uint64("generation", gen).Msg("Location directory refreshed")
	return dir, nil
}

// Current returns the most recently loaded directory, which is empty before the
// first successful Load.
func (l *DirectoryLoader) Current() *LocationDirectory {
	return l.current.Load()
}
