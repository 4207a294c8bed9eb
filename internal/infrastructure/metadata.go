package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	tmdb "github.com/cyruzin/golang-tmdb"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Agurato/overcast/internal/metrics"
	"github.com/Agurato/overcast/internal/model"
)

const (
	tmdbImageURL = "https://image.tmdb.org/t/p/"
	tmdbDate     = "2006-01-02"

	mediaTypeMovie = "movie"
	mediaTypeTV    = "tv"
)

// MetadataWrapper is the TMDB implementation of the catalog
type MetadataWrapper struct {
	client  *tmdb.Client
	limiter *rate.Limiter
}

// MetadataOption configures a MetadataWrapper
type MetadataOption func(*MetadataWrapper)

// WithHTTPClient replaces the HTTP client used to reach TMDB
func WithHTTPClient(httpClient http.Client) MetadataOption {
	return func(mw *MetadataWrapper) {
		mw.client.SetClientConfig(httpClient)
	}
}

// NewMetadataWrapper initializes a MetadataWrapper sending at most requestsPerSecond requests to TMDB
func NewMetadataWrapper(tmdbAPIKey string, requestsPerSecond float64, opts ...MetadataOption) (*MetadataWrapper, error) {
	client, err := tmdb.Init(tmdbAPIKey)
	if err != nil {
		return nil, fmt.Errorf("could not initialize TMDB client: %w", err)
	}
	client.SetClientConfig(http.Client{Timeout: 10 * time.Second})

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	mw := &MetadataWrapper{
		client:  client,
		limiter: rate.NewLimiter(limit, max(1, int(requestsPerSecond))),
	}
	for _, opt := range opts {
		opt(mw)
	}
	return mw, nil
}

// GetPhotoLink returns the thumbnail URL of a person's photo
func (mw MetadataWrapper) GetPhotoLink(key string) string {
	return tmdbImageURL + tmdb.W185 + key
}

// SearchMulti searches movies and TV shows matching the query, in TMDB's ranking order.
// People are left out of the results.
func (mw MetadataWrapper) SearchMulti(ctx context.Context, query string) ([]model.SearchCandidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	var res *tmdb.SearchMulti
	err := mw.call(ctx, "search_multi", func() (err error) {
		res, err = mw.client.GetSearchMulti(query, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not search '%s': %w", query, err)
	}
	if res == nil {
		return nil, nil
	}

	var candidates []model.SearchCandidate
	for _, result := range res.Results {
		switch result.MediaType {
		case mediaTypeMovie:
			candidates = append(candidates, model.SearchCandidate{
				ID:          int(result.ID),
				Kind:        model.KindMovie,
				DisplayName: result.Title,
				ReleaseDate: parseDate(result.ReleaseDate),
			})
		case mediaTypeTV:
			candidates = append(candidates, model.SearchCandidate{
				ID:          int(result.ID),
				Kind:        model.KindShow,
				DisplayName: result.Name,
				ReleaseDate: parseDate(result.FirstAirDate),
			})
		}
	}
	log.Debug().Str("query", query).Int("candidates", len(candidates)).Msg("Searched TMDB")
	return candidates, nil
}

// GetMovieCredits returns the cast of a movie, nil if TMDB has none
func (mw MetadataWrapper) GetMovieCredits(ctx context.Context, movieID int) ([]model.CastCredit, error) {
	var credits *tmdb.MovieCredits
	err := mw.call(ctx, "movie_credits", func() (err error) {
		credits, err = mw.client.GetMovieCredits(movieID, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not get credits of movie %d: %w", movieID, err)
	}
	if credits == nil {
		return nil, nil
	}
	var cast []model.CastCredit
	for _, c := range credits.Cast {
		cast = append(cast, model.CastCredit{PersonID: c.ID, Name: c.Name, Character: c.Character, ProfilePath: c.ProfilePath})
	}
	return cast, nil
}

// GetShowCredits returns the cast of the latest season of a show, nil if TMDB has none
func (mw MetadataWrapper) GetShowCredits(ctx context.Context, showID int) ([]model.CastCredit, error) {
	var credits *tmdb.TVCredits
	err := mw.call(ctx, "tv_credits", func() (err error) {
		credits, err = mw.client.GetTVCredits(showID, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not get credits of show %d: %w", showID, err)
	}
	if credits == nil {
		return nil, nil
	}
	var cast []model.CastCredit
	for _, c := range credits.Cast {
		cast = append(cast, model.CastCredit{PersonID: c.ID, Name: c.Name, Character: c.Character, ProfilePath: c.ProfilePath})
	}
	return cast, nil
}

// GetShowAggregateCredits returns the cast of all the seasons of a show, with every role of each person
func (mw MetadataWrapper) GetShowAggregateCredits(ctx context.Context, showID int) ([]model.AggregateCredit, error) {
	var credits *tmdb.TVAggregateCredits
	err := mw.call(ctx, "tv_aggregate_credits", func() (err error) {
		credits, err = mw.client.GetTVAggregateCredits(showID, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not get aggregate credits of show %d: %w", showID, err)
	}
	if credits == nil {
		return nil, nil
	}
	var cast []model.AggregateCredit
	for _, c := range credits.Cast {
		credit := model.AggregateCredit{PersonID: c.ID, Name: c.Name, ProfilePath: c.ProfilePath}
		for _, role := range c.Roles {
			credit.Roles = append(credit.Roles, role.Character)
		}
		cast = append(cast, credit)
	}
	return cast, nil
}

// GetShowSeasonCredits returns the cast of one season of a show
func (mw MetadataWrapper) GetShowSeasonCredits(ctx context.Context, showID, seasonNumber int) ([]model.CastCredit, error) {
	var credits *tmdb.TVSeasonCredits
	err := mw.call(ctx, "tv_season_credits", func() (err error) {
		credits, err = mw.client.GetTVSeasonCredits(showID, seasonNumber, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not get credits of season %d of show %d: %w", seasonNumber, showID, err)
	}
	if credits == nil {
		return nil, nil
	}
	var cast []model.CastCredit
	for _, c := range credits.Cast {
		cast = append(cast, model.CastCredit{PersonID: c.ID, Name: c.Name, Character: c.Character, ProfilePath: c.ProfilePath})
	}
	return cast, nil
}

// GetShowMetadata returns the number of seasons of a show. The count is nil if TMDB does not know it.
func (mw MetadataWrapper) GetShowMetadata(ctx context.Context, showID int) (model.ShowMetadata, error) {
	var details *tmdb.TVDetails
	err := mw.call(ctx, "tv_details", func() (err error) {
		details, err = mw.client.GetTVDetails(showID, nil)
		return err
	})
	if err != nil {
		return model.ShowMetadata{}, fmt.Errorf("could not get details of show %d: %w", showID, err)
	}
	if details == nil || details.NumberOfSeasons == 0 {
		return model.ShowMetadata{}, nil
	}
	seasonCount := details.NumberOfSeasons
	return model.ShowMetadata{SeasonCount: &seasonCount}, nil
}

// call waits for the rate limiter, then runs a TMDB request and records its metrics
func (mw MetadataWrapper) call(ctx context.Context, endpoint string, request func() error) error {
	if err := mw.limiter.Wait(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := request()
	metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("TMDB request failed")
	}
	metrics.CatalogRequestsTotal.WithLabelValues(endpoint, status).Inc()
	return err
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	date, err := time.Parse(tmdbDate, value)
	if err != nil {
		return nil
	}
	return &date
}
