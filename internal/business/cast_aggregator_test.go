package business_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/overcast/internal/business"
	"github.com/Agurato/overcast/internal/model"
)

func characters(cast *model.Cast) map[int64]string {
	out := make(map[int64]string)
	for _, member := range cast.Members() {
		out[member.PersonID] = member.Character()
	}
	return out
}

func TestAggregateMovie(t *testing.T) {
	catalog := newStubCatalog()
	catalog.movieCredits[27205] = []model.CastCredit{
		{PersonID: 6193, Name: "Leonardo DiCaprio", Character: "Cobb"},
		{PersonID: 3895, Name: "Michael Caine", Character: "Miles", ProfilePath: "/caine.jpg"},
		{PersonID: 6193, Name: "Leonardo DiCaprio", Character: "Dom Cobb"},
	}
	catalog.movieCredits[1] = nil
	ca := business.NewCastAggregator(catalog)

	t.Run("one member per person", func(t *testing.T) {
		cast, err := ca.Aggregate(context.Background(), model.ResolvedTitle{SearchCandidate: movie(27205, "Inception", "")})
		require.NoError(t, err)
		assert.Equal(t, 2, cast.Len())
		assert.Equal(t, map[int64]string{6193: "Cobb / Dom Cobb", 3895: "Miles"}, characters(cast))
		assert.Equal(t, int64(6193), cast.Members()[0].PersonID)
	})

	t.Run("missing credits give an empty cast", func(t *testing.T) {
		cast, err := ca.Aggregate(context.Background(), model.ResolvedTitle{SearchCandidate: movie(1, "Nothing", "")})
		require.NoError(t, err)
		assert.Equal(t, 0, cast.Len())
	})

	t.Run("transport error", func(t *testing.T) {
		_, err := ca.Aggregate(context.Background(), model.ResolvedTitle{SearchCandidate: movie(2, "Broken", "")})
		assert.ErrorIs(t, err, errCatalogDown)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ca.Aggregate(context.Background(), model.ResolvedTitle{Query: "odd"})
		assert.Error(t, err)
	})
}

func TestAggregateShow(t *testing.T) {
	catalog := newStubCatalog()
	catalog.aggregateCredits[1396] = []model.AggregateCredit{
		{PersonID: 17419, Name: "Bryan Cranston", Roles: []string{"Walter White", "", "Walter White", "Heisenberg"}},
		{PersonID: 84497, Name: "Aaron Paul", Roles: nil},
	}
	ca := business.NewCastAggregator(catalog)

	cast, err := ca.Aggregate(context.Background(), model.ResolvedTitle{SearchCandidate: show(1396, "Breaking Bad", "")})
	require.NoError(t, err)
	member, ok := cast.Get(17419)
	require.True(t, ok)
	assert.Equal(t, []string{"Walter White", "Heisenberg"}, member.CharacterNames)
	assert.Equal(t, "Walter White / Heisenberg", member.Character())
	member, ok = cast.Get(84497)
	require.True(t, ok)
	assert.Empty(t, member.CharacterNames)
	assert.NotContains(t, catalog.recorded(), "metadata 1396")
}

func TestAggregateShowFallback(t *testing.T) {
	const showID = 66732
	newCatalog := func() *stubCatalog {
		catalog := newStubCatalog()
		catalog.seasonCounts[showID] = intPtr(4)
		catalog.showCredits[showID] = []model.CastCredit{
			{PersonID: 1, Name: "Millie Bobby Brown", Character: ""},
			{PersonID: 2, Name: "David Harbour", Character: "Jim Hopper"},
		}
		catalog.seasonCredits[showID] = map[int][]model.CastCredit{
			1: {
				{PersonID: 1, Name: "Millie Bobby Brown", Character: "Eleven"},
				{PersonID: 3, Name: "Winona Ryder", Character: "Joyce"},
			},
			2: {
				{PersonID: 2, Name: "David Harbour", Character: "Jim"},
				{PersonID: 3, Name: "Winona Ryder", Character: "Joyce Byers"},
				{PersonID: 4, Name: "Sean Astin", Character: "Bob Newby"},
			},
			3: {
				{PersonID: 3, Name: "Winona Ryder", Character: "Joyce Byers"},
				{PersonID: 5, Name: "Maya Hawke", Character: "Robin"},
			},
			4: {
				{PersonID: 6, Name: "Jamie Campbell Bower", Character: "Vecna"},
			},
		}
		catalog.failingSeasons[showID] = map[int]bool{4: true}
		return catalog
	}
	title := model.ResolvedTitle{SearchCandidate: show(showID, "Stranger Things", "2016-07-15")}

	t.Run("failing season is skipped", func(t *testing.T) {
		catalog := newCatalog()
		cast, err := business.NewCastAggregator(catalog).Aggregate(context.Background(), title)
		require.NoError(t, err)
		assert.Equal(t, map[int64]string{
			// Empty stored characters are never completed
			1: "",
			// "Jim" is already part of "Jim Hopper"
			2: "Jim Hopper",
			3: "Joyce / Joyce Byers",
			4: "Bob Newby",
			5: "Robin",
		}, characters(cast))
		assert.Contains(t, catalog.recorded(), "season 66732/4")
	})

	t.Run("same season twice does not duplicate names", func(t *testing.T) {
		catalog := newCatalog()
		catalog.seasonCredits[showID][4] = catalog.seasonCredits[showID][3]
		catalog.failingSeasons[showID] = nil
		cast, err := business.NewCastAggregator(catalog).Aggregate(context.Background(), title)
		require.NoError(t, err)
		member, _ := cast.Get(3)
		assert.Equal(t, []string{"Joyce", "Joyce Byers"}, member.CharacterNames)
	})

	t.Run("unknown season count gives an empty cast", func(t *testing.T) {
		for _, count := range []*int{nil, intPtr(0), intPtr(-1)} {
			catalog := newCatalog()
			catalog.seasonCounts[showID] = count
			cast, err := business.NewCastAggregator(catalog).Aggregate(context.Background(), title)
			require.NoError(t, err)
			assert.Equal(t, 0, cast.Len())
			assert.NotContains(t, catalog.recorded(), "season 66732/1")
		}
	})

	t.Run("metadata error", func(t *testing.T) {
		catalog := newCatalog()
		delete(catalog.seasonCounts, showID)
		_, err := business.NewCastAggregator(catalog).Aggregate(context.Background(), title)
		assert.ErrorIs(t, err, errCatalogDown)
	})
}
