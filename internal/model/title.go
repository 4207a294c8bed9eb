package model

import "time"

// MediaKind tells whether a catalog entry is a movie or a TV show
type MediaKind int

const (
	KindMovie MediaKind = iota + 1
	KindShow
)

func (k MediaKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindShow:
		return "show"
	}
	return "unknown"
}

// SearchCandidate is one entry of a catalog multi-search, in the catalog's ranking order
type SearchCandidate struct {
	ID          int
	Kind        MediaKind
	DisplayName string
	ReleaseDate *time.Time
}

// ResolvedTitle is the candidate picked for a query
type ResolvedTitle struct {
	SearchCandidate
	Query string
}

// ReleaseDateString formats the release date, or returns fallback when it is unknown
func (c SearchCandidate) ReleaseDateString(fallback string) string {
	if c.ReleaseDate == nil || c.ReleaseDate.IsZero() {
		return fallback
	}
	return c.ReleaseDate.Format(time.DateOnly)
}
