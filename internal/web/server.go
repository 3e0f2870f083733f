// Package web exposes the analyzer over HTTP: a JSON analyze endpoint
// for editor integrations and a Prometheus /metrics endpoint, served by
// gin.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ffanalyze"
	"ffanalyze/internal/applog"
	"ffanalyze/internal/wire"
)

// StartServer starts the web server on the given port (default 8080 if
// empty).
func StartServer(port string) error {
	if port == "" {
		port = "8080"
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())

	router.POST("/api/analyze", handleAnalyze)
	router.POST("/api/line-context", handleLineContext)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	startupLogger := applog.ForRequest("startup")
	startupLogger.Info().Str("port", port).Msg("starting ffanalyze web server")
	return router.Run(":" + port)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func handleAnalyze(c *gin.Context) {
	requestID, _ := c.Get("request_id")
	logger := applog.ForRequest(requestID.(string))

	var req wire.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lineOffset := req.LineOffset
	if lineOffset == 0 {
		lineOffset = 1
	}

	result := ffanalyze.Analyze(req.Content, req.FilePath, lineOffset, req.ColumnOffset)
	logger.Debug().Int("messages", len(result.Messages)).Msg("analyze completed")

	c.JSON(http.StatusOK, wire.FromDiagnostics(result))
}

// lineContextRequest carries the same command buffer the caller already
// sent to /api/analyze, plus the line number of a diagnostic's Target
// span it wants context around.
type lineContextRequest struct {
	Content string `json:"content"`
	Line    int    `json:"line"`
}

func handleLineContext(c *gin.Context) {
	var req lineContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, GetLineContext(req.Content, req.Line))
}
