package model

// CastCredit is a single cast row as returned by the catalog for a movie, a show or a season
type CastCredit struct {
	PersonID    int64
	Name        string
	Character   string
	ProfilePath string
}

// AggregateCredit is a person's cast entry across all the seasons of a show
type AggregateCredit struct {
	PersonID    int64
	Name        string
	Roles       []string
	ProfilePath string
}

// ShowMetadata holds the show details needed to walk its seasons.
// SeasonCount is nil when the catalog does not know it.
type ShowMetadata struct {
	SeasonCount *int
}
