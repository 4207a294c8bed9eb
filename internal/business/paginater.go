package business

import (
	"github.com/Agurato/overcast/internal/model"
)

// Paginater splits a list of items into pages
type Paginater[T any] struct {
	itemsPerPage int
}

// NewPaginater instantiates a new Paginater
func NewPaginater[T any](itemsPerPage int) *Paginater[T] {
	if itemsPerPage <= 0 {
		itemsPerPage = 1
	}
	return &Paginater[T]{
		itemsPerPage: itemsPerPage,
	}
}

// PageCount returns the number of pages needed to display all the items
func (p *Paginater[T]) PageCount(items []T) int {
	return (len(items) + p.itemsPerPage - 1) / p.itemsPerPage
}

// GetPagination returns the items of the current page and the links to display in the page selector
func (p *Paginater[T]) GetPagination(currentPage int, items []T) ([]T, []model.PageLink) {
	pageMax := p.PageCount(items)
	if currentPage < 1 {
		currentPage = 1
	}

	links := []model.PageLink{{Number: 1, Active: currentPage == 1}}
	// Dots between 1 and current-1
	if currentPage > 3 {
		links = append(links, model.PageLink{Dots: true})
	}
	for i := currentPage - 1; i <= currentPage+1; i++ {
		if i <= 1 || i >= pageMax {
			continue
		}
		links = append(links, model.PageLink{Number: i, Active: i == currentPage})
	}
	// Dots between current+1 and max
	if currentPage < pageMax-2 {
		links = append(links, model.PageLink{Dots: true})
	}
	if pageMax > 1 {
		links = append(links, model.PageLink{Number: pageMax, Active: currentPage == pageMax})
	}

	start := (currentPage - 1) * p.itemsPerPage
	if start >= len(items) {
		return []T{}, links
	}
	end := min(start+p.itemsPerPage, len(items))
	return items[start:end], links
}
