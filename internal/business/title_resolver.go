package business

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"

	"github.com/Agurato/overcast/internal/model"
)

// TitleResolver picks the catalog candidate matching a free-text query
type TitleResolver struct{}

func NewTitleResolver() *TitleResolver {
	return &TitleResolver{}
}

// Resolve returns the best candidate for the query: an exact title, then a title starting with the query,
// then a title containing it. Within each tier the catalog's ranking wins.
// Returns false if no candidate matches at all.
func (tr TitleResolver) Resolve(query string, candidates []model.SearchCandidate) (model.ResolvedTitle, bool) {
	normalized := normalizeTitle(query)
	tiers := []func(name string) bool{
		func(name string) bool { return name == normalized },
		func(name string) bool { return strings.HasPrefix(name, normalized) },
		func(name string) bool { return strings.Contains(name, normalized) },
	}
	for _, matches := range tiers {
		candidate, found := lo.Find(candidates, func(c model.SearchCandidate) bool {
			return matches(normalizeTitle(c.DisplayName))
		})
		if found {
			return model.ResolvedTitle{SearchCandidate: candidate, Query: query}, true
		}
	}
	return model.ResolvedTitle{}, false
}

// Suggest returns the display name of the candidate closest to the query,
// as long as it is within a third of the query length (in edits)
func (tr TitleResolver) Suggest(query string, candidates []model.SearchCandidate) (string, bool) {
	normalized := normalizeTitle(query)
	suggestion, bestDistance := "", -1
	for _, c := range candidates {
		distance := levenshtein.ComputeDistance(normalized, normalizeTitle(c.DisplayName))
		if bestDistance < 0 || distance < bestDistance {
			suggestion, bestDistance = c.DisplayName, distance
		}
	}
	if bestDistance < 0 || bestDistance >= utf8.RuneCountInString(normalized)/3 {
		return "", false
	}
	return suggestion, true
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
