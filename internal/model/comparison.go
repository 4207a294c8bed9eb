package model

// CommonCastEntry is a person found in the cast of both compared titles
type CommonCastEntry struct {
	PersonID        int64  `json:"id"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl"`
	Character1      string `json:"character1"`
	Character2      string `json:"character2"`
	ReleaseDate1    string `json:"releaseDate1"`
	ReleaseDate2    string `json:"releaseDate2"`
}

// ComparisonResult is the outcome of comparing two titles. ErrorMessage and NotFoundTitles carry every failure.
type ComparisonResult struct {
	Title1         string            `json:"title1"`
	Title2         string            `json:"title2"`
	CommonCast     []CommonCastEntry `json:"commonCast"`
	NotFoundTitles []string          `json:"notFoundTitles"`
	Suggestions    map[string]string `json:"suggestions,omitempty"`
	ErrorMessage   string            `json:"errorMessage,omitempty"`
}

// Failed returns true if the comparison did not produce a common cast
func (cr ComparisonResult) Failed() bool {
	return cr.ErrorMessage != ""
}
