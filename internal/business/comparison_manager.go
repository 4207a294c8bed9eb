package business

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Agurato/overcast/internal/metrics"
	"github.com/Agurato/overcast/internal/model"
)

// ErrorMessageSearch is the only error detail shown to users when a comparison fails
const ErrorMessageSearch = "An error occurred while searching. Please try again later."

// TitleSearcher searches the catalog for movies and shows
type TitleSearcher interface {
	SearchMulti(ctx context.Context, query string) ([]model.SearchCandidate, error)
}

type ComparisonManager struct {
	TitleSearcher
	resolver    *TitleResolver
	aggregator  *CastAggregator
	intersector *CastIntersector
}

func NewComparisonManager(ts TitleSearcher, tr *TitleResolver, ca *CastAggregator, ci *CastIntersector) *ComparisonManager {
	return &ComparisonManager{
		TitleSearcher: ts,
		resolver:      tr,
		aggregator:    ca,
		intersector:   ci,
	}
}

// Compare resolves both titles and returns the performers credited in both.
// It never fails: errors are reported through the ErrorMessage and NotFoundTitles fields of the result.
func (cm ComparisonManager) Compare(ctx context.Context, title1, title2 string) (result model.ComparisonResult) {
	result = model.ComparisonResult{
		Title1:         title1,
		Title2:         title2,
		CommonCast:     []model.CommonCastEntry{},
		NotFoundTitles: []string{},
	}
	logger := log.With().Str("title1", title1).Str("title2", title2).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Comparison failed unexpectedly")
			result.CommonCast = []model.CommonCastEntry{}
			result.ErrorMessage = ErrorMessageSearch
		}
		metrics.ComparisonsTotal.WithLabelValues(outcome(result)).Inc()
	}()

	var candidates1, candidates2 []model.SearchCandidate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(recovered(func() (err error) {
		candidates1, err = cm.TitleSearcher.SearchMulti(gctx, title1)
		return err
	}))
	g.Go(recovered(func() (err error) {
		candidates2, err = cm.TitleSearcher.SearchMulti(gctx, title2)
		return err
	}))
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Could not search for titles")
		result.ErrorMessage = ErrorMessageSearch
		return result
	}

	common, err := cm.compareCandidates(ctx, &result, candidates1, candidates2)
	if err != nil {
		logger.Error().Err(err).Msg("Could not compare casts")
		result.ErrorMessage = ErrorMessageSearch
		return result
	}
	if common != nil {
		result.CommonCast = common
		metrics.CommonCastSize.Observe(float64(len(common)))
		logger.Info().Int("commonCast", len(common)).Msg("Compared casts")
	}
	return result
}

// compareCandidates resolves both titles, aggregates their cast and intersects them.
// A nil slice without error means at least one title was not found.
func (cm ComparisonManager) compareCandidates(ctx context.Context, result *model.ComparisonResult, candidates1, candidates2 []model.SearchCandidate) ([]model.CommonCastEntry, error) {
	resolved1, found1 := cm.resolver.Resolve(result.Title1, candidates1)
	resolved2, found2 := cm.resolver.Resolve(result.Title2, candidates2)
	if !found1 {
		cm.addNotFound(result, result.Title1, candidates1)
	}
	if !found2 {
		cm.addNotFound(result, result.Title2, candidates2)
	}
	if len(result.NotFoundTitles) > 0 {
		result.ErrorMessage = notFoundMessage(result.NotFoundTitles)
		return nil, nil
	}

	var cast1, cast2 *model.Cast
	g, gctx := errgroup.WithContext(ctx)
	g.Go(recovered(func() (err error) {
		cast1, err = cm.aggregator.Aggregate(gctx, resolved1)
		return err
	}))
	g.Go(recovered(func() (err error) {
		cast2, err = cm.aggregator.Aggregate(gctx, resolved2)
		return err
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Title1 = resolved1.DisplayName
	result.Title2 = resolved2.DisplayName
	return cm.intersector.Intersect(cast1, cast2, resolved1, resolved2), nil
}

func (cm ComparisonManager) addNotFound(result *model.ComparisonResult, query string, candidates []model.SearchCandidate) {
	result.NotFoundTitles = append(result.NotFoundTitles, query)
	if suggestion, ok := cm.resolver.Suggest(query, candidates); ok {
		if result.Suggestions == nil {
			result.Suggestions = make(map[string]string)
		}
		result.Suggestions[query] = suggestion
	}
}

func notFoundMessage(notFound []string) string {
	if len(notFound) == 1 {
		return fmt.Sprintf("'%s' does not exist in the database.", notFound[0])
	}
	return fmt.Sprintf("'%s' and '%s' do not exist in the database.", notFound[0], notFound[1])
}

func outcome(result model.ComparisonResult) string {
	switch {
	case len(result.NotFoundTitles) > 0:
		return metrics.OutcomeNotFound
	case result.Failed():
		return metrics.OutcomeError
	}
	return metrics.OutcomeSuccess
}

// recovered turns a panic of fn into an error, so that it cannot escape a goroutine
func recovered(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("recovered from panic: %v", r)
			}
		}()
		return fn()
	}
}
