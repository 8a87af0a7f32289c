package usecase

import (
	"context"
	"time"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/logger"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
	"github.com/skyroute/route-console/internal/validation"
)

// RouteSearchUseCase defines route search operations.
type RouteSearchUseCase interface {
	// Prepare validates criteria and normalizes them into the upstream query.
	// It never performs I/O.
	Prepare(criteria domain.RouteSearchCriteria) (domain.RouteQuery, error)

	// Execute runs a prepared query. A not-found answer is an empty result.
	Execute(ctx context.Context, query domain.RouteQuery) (*domain.RouteSearchResult, error)

	// Search prepares and executes in one step.
	Search(ctx context.Context, criteria domain.RouteSearchCriteria) (*domain.RouteSearchResult, error)
}

type routeSearchUseCase struct {
	finder      domain.RouteFinder
	location    *time.Location
	verifyShape bool
	clock       timeutil.Clock
	log         *logger.Logger
}

// NewRouteSearchUseCase creates a RouteSearchUseCase backed by the given finder.
// If config is nil, default values are used.
func NewRouteSearchUseCase(finder domain.RouteFinder, config *Config) RouteSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.Location != nil {
			cfg.Location = config.Location
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
		cfg.VerifyShape = config.VerifyShape
	}

	return &routeSearchUseCase{
		finder:      finder,
		location:    cfg.Location,
		verifyShape: cfg.VerifyShape,
		clock:       cfg.Clock,
		log:         cfg.Logger.WithComponent("route_search"),
	}
}

// Prepare implements RouteSearchUseCase.Prepare.
func (uc *routeSearchUseCase) Prepare(criteria domain.RouteSearchCriteria) (domain.RouteQuery, error) {
	if err := validation.RouteSearch(criteria, timeutil.Today(uc.clock, uc.location)); err != nil {
		return domain.RouteQuery{}, err
	}
	return NormalizeQuery(criteria, uc.location), nil
}

// Execute implements RouteSearchUseCase.Execute.
func (uc *routeSearchUseCase) Execute(ctx context.Context, query domain.RouteQuery) (*domain.RouteSearchResult, error) {
	start := time.Now()
	routes, err := uc.finder.FindRoutes(ctx, query)
	elapsed := time.Since(start)

	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			uc.log.Debug().Str("query", query.CacheKey()).Msg("No routes found")
			return domain.NewRouteSearchResult(query, nil, elapsed), nil
		}
		return nil, err
	}

	discarded := 0
	if uc.verifyShape {
		routes, discarded = uc.dropMalformed(query, routes)
	}

	result := domain.NewRouteSearchResult(query, routes, elapsed)
	result.Discarded = discarded

	uc.log.Debug().
		Str("query", query.CacheKey()).
		Int("routes", len(result.Routes)).
		Int("discarded", discarded).
		Int64("search_time_ms", result.SearchTimeMs).
		Msg("Route search completed")

	return result, nil
}

// Search implements RouteSearchUseCase.Search.
func (uc *routeSearchUseCase) Search(ctx context.Context, criteria domain.RouteSearchCriteria) (*domain.RouteSearchResult, error) {
	query, err := uc.Prepare(criteria)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, query)
}

// dropMalformed keeps the routes that pass Route.CheckShape, preserving order.
func (uc *routeSearchUseCase) dropMalformed(query domain.RouteQuery, routes []domain.Route) ([]domain.Route, int) {
	kept := make([]domain.Route, 0, len(routes))
	for i, r := range routes {
		if err := r.CheckShape(); err != nil {
			uc.log.Warn().
				Err(err).
				Str("query", query.CacheKey()).
				Int("route_index", i).
				Msg("Dropping malformed route")
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(routes) - len(kept)
}

// NormalizeQuery turns validated criteria into the upstream query. The date, when
// present, becomes the YYYY-MM-DD calendar day observed in loc.
func NormalizeQuery(criteria domain.RouteSearchCriteria, loc *time.Location) domain.RouteQuery {
	var query domain.RouteQuery
	if criteria.OriginLocationID != nil {
		query.OriginLocationID = *criteria.OriginLocationID
	}
	if criteria.DestinationLocationID != nil {
		query.DestinationLocationID = *criteria.DestinationLocationID
	}
	if criteria.Date != nil {
		query.Date = timeutil.CalendarDate(*criteria.Date, loc)
	}
	return query
}
