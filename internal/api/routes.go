package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunward-optics/frametag/internal/telemetry"
)

func (s *Server) registerRoutes(h *Handler, tp *telemetry.Provider) {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": s.name,
			"version": s.version,
		})
	})
	if tp != nil {
		s.engine.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/tag", h.Tag)
		v1.POST("/tag/batch", h.TagBatch)
		v1.GET("/rules", h.ListRules)
		v1.GET("/history", h.History)
	}
}
