package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Agurato/overcast/internal/model"
)

type Comparer interface {
	Compare(ctx context.Context, title1, title2 string) model.ComparisonResult
}

type CastPaginater interface {
	GetPagination(currentPage int, items []model.CommonCastEntry) ([]model.CommonCastEntry, []model.PageLink)
}

type ComparisonHandler struct {
	Comparer
	CastPaginater
}

func NewComparisonHandler(c Comparer, cp CastPaginater) *ComparisonHandler {
	return &ComparisonHandler{
		Comparer:      c,
		CastPaginater: cp,
	}
}

// GETCompare displays the common cast of two titles, one page at a time
func (ch ComparisonHandler) GETCompare(c *gin.Context) {
	title1 := formValue(c, "title1")
	title2 := formValue(c, "title2")
	page, err := strconv.Atoi(formValue(c, "page"))
	if err != nil || page < 1 {
		page = 1
	}

	result := ch.Comparer.Compare(c.Request.Context(), title1, title2)
	cast, pages := ch.CastPaginater.GetPagination(page, result.CommonCast)

	RenderHTML(c, statusOf(result), "index.go.html", gin.H{
		"title":  result.Title1 + " & " + result.Title2,
		"query1": title1,
		"query2": title2,
		"result": result,
		"cast":   cast,
		"pages":  pages,
	})
}

// GETAPICompare returns the comparison of two titles as JSON
func (ch ComparisonHandler) GETAPICompare(c *gin.Context) {
	result := ch.Comparer.Compare(c.Request.Context(), c.Query("title1"), c.Query("title2"))
	c.JSON(statusOf(result), result)
}

// statusOf maps the outcome of a comparison to an HTTP status
func statusOf(result model.ComparisonResult) int {
	switch {
	case len(result.NotFoundTitles) > 0:
		return http.StatusNotFound
	case result.Failed():
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// formValue reads a value from the POST form, then from the query string
func formValue(c *gin.Context, key string) string {
	if value, ok := c.GetPostForm(key); ok {
		return value
	}
	return c.Query(key)
}
