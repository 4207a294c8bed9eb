package business_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Agurato/overcast/internal/model"
)

var errCatalogDown = errors.New("catalog unavailable")

// stubCatalog is an in-memory catalog. Its maps are only read once a test starts.
type stubCatalog struct {
	searches         map[string][]model.SearchCandidate
	failingSearches  map[string]bool
	movieCredits     map[int][]model.CastCredit
	showCredits      map[int][]model.CastCredit
	aggregateCredits map[int][]model.AggregateCredit
	seasonCredits    map[int]map[int][]model.CastCredit
	failingSeasons   map[int]map[int]bool
	seasonCounts     map[int]*int
	panicOnMovie     bool

	mu    sync.Mutex
	calls []string
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		searches:         make(map[string][]model.SearchCandidate),
		failingSearches:  make(map[string]bool),
		movieCredits:     make(map[int][]model.CastCredit),
		showCredits:      make(map[int][]model.CastCredit),
		aggregateCredits: make(map[int][]model.AggregateCredit),
		seasonCredits:    make(map[int]map[int][]model.CastCredit),
		failingSeasons:   make(map[int]map[int]bool),
		seasonCounts:     make(map[int]*int),
	}
}

func (sc *stubCatalog) record(call string, args ...any) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calls = append(sc.calls, fmt.Sprintf(call, args...))
}

func (sc *stubCatalog) recorded() []string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return append([]string(nil), sc.calls...)
}

func (sc *stubCatalog) SearchMulti(_ context.Context, query string) ([]model.SearchCandidate, error) {
	sc.record("search %s", query)
	if sc.failingSearches[query] {
		return nil, errCatalogDown
	}
	return sc.searches[query], nil
}

func (sc *stubCatalog) GetMovieCredits(_ context.Context, movieID int) ([]model.CastCredit, error) {
	sc.record("movie %d", movieID)
	if sc.panicOnMovie {
		panic("malformed movie credits")
	}
	credits, ok := sc.movieCredits[movieID]
	if !ok {
		return nil, errCatalogDown
	}
	return credits, nil
}

func (sc *stubCatalog) GetShowCredits(_ context.Context, showID int) ([]model.CastCredit, error) {
	sc.record("show %d", showID)
	return sc.showCredits[showID], nil
}

func (sc *stubCatalog) GetShowAggregateCredits(_ context.Context, showID int) ([]model.AggregateCredit, error) {
	sc.record("aggregate %d", showID)
	credits, ok := sc.aggregateCredits[showID]
	if !ok {
		return nil, errCatalogDown
	}
	return credits, nil
}

func (sc *stubCatalog) GetShowSeasonCredits(_ context.Context, showID, seasonNumber int) ([]model.CastCredit, error) {
	sc.record("season %d/%d", showID, seasonNumber)
	if sc.failingSeasons[showID][seasonNumber] {
		return nil, errCatalogDown
	}
	return sc.seasonCredits[showID][seasonNumber], nil
}

func (sc *stubCatalog) GetShowMetadata(_ context.Context, showID int) (model.ShowMetadata, error) {
	sc.record("metadata %d", showID)
	count, ok := sc.seasonCounts[showID]
	if !ok {
		return model.ShowMetadata{}, errCatalogDown
	}
	return model.ShowMetadata{SeasonCount: count}, nil
}

type stubLinker struct{}

func (stubLinker) GetPhotoLink(key string) string {
	return "https://image.tmdb.org/t/p/w185" + key
}

func intPtr(i int) *int {
	return &i
}

func date(value string) *time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return &d
}

func movie(id int, name, releaseDate string) model.SearchCandidate {
	candidate := model.SearchCandidate{ID: id, Kind: model.KindMovie, DisplayName: name}
	if releaseDate != "" {
		candidate.ReleaseDate = date(releaseDate)
	}
	return candidate
}

func show(id int, name, firstAirDate string) model.SearchCandidate {
	candidate := movie(id, name, firstAirDate)
	candidate.Kind = model.KindShow
	return candidate
}
