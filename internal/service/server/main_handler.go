package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MainHandler struct {
	metricsHandler http.Handler
}

func NewMainHandler() *MainHandler {
	return &MainHandler{
		metricsHandler: promhttp.Handler(),
	}
}

// Error404 displays the 404 page
func (mh MainHandler) Error404(c *gin.Context) {
	RenderHTML(c, http.StatusNotFound, "404.go.html", gin.H{
		"title": "404 - Not Found",
	})
}

// GETIndex displays the comparison form
func (mh MainHandler) GETIndex(c *gin.Context) {
	RenderHTML(c, http.StatusOK, "index.go.html", gin.H{
		"query1": "",
		"query2": "",
	})
}

// GETNoProfileImage serves the placeholder for people without a photo
func (mh MainHandler) GETNoProfileImage(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", noProfileImage)
}

// GETMetrics exposes the Prometheus metrics
func (mh MainHandler) GETMetrics(c *gin.Context) {
	mh.metricsHandler.ServeHTTP(c.Writer, c.Request)
}
