package model

// PageLink is one entry of the page selector shown under the common cast.
// Dots entries stand for a run of skipped pages.
type PageLink struct {
	Number int
	Active bool
	Dots   bool
}
