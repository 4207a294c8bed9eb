package server

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Agurato/overcast/internal/metrics"
)

//go:embed templates/*.go.html
var templatesFS embed.FS

//go:embed static/no-profile.svg
var noProfileImage []byte

// NewServer initializes the router
func NewServer(mainHandler *MainHandler, comparisonHandler *ComparisonHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger)
	router.SetTrustedProxies(nil)

	// Add template functions
	funcMap := template.FuncMap{
		"title": cases.Title(language.English).String,
	}
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.go.html")))

	router.NoRoute(mainHandler.Error404)

	router.GET("/", mainHandler.GETIndex)
	router.GET("/images/no-profile.svg", mainHandler.GETNoProfileImage)
	router.GET("/metrics", mainHandler.GETMetrics)

	router.GET("/compare", comparisonHandler.GETCompare)
	router.POST("/compare", comparisonHandler.GETCompare)
	router.GET("/api/compare", comparisonHandler.GETAPICompare)

	return router
}

// RenderHTML renders HTML pages and adds useful objects for templates
func RenderHTML(c *gin.Context, code int, name string, obj gin.H) {
	obj["appName"] = "overcast"
	if _, ok := obj["title"]; !ok {
		obj["title"] = "overcast"
	}
	c.HTML(code, name, obj)
}

// requestLogger logs every request and counts it
func requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	status := c.Writer.Status()
	metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
	log.Info().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Str("remote", c.ClientIP()).
		Dur("took", time.Since(start)).
		Msg("http.request")
}
