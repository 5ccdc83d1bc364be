package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praqsys/edidctl/internal/assistant"
	"github.com/praqsys/edidctl/internal/config"
	"github.com/praqsys/edidctl/internal/edid"
	"github.com/praqsys/edidctl/internal/observability"
	"github.com/praqsys/edidctl/internal/timing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type recomputeRequest struct {
	Params  edid.Params  `json:"params"`
	Changed string       `json:"changed"`
	Value   int          `json:"value"`
	Locks   timing.Locks `json:"locks"`
}

type applyRequest struct {
	Params edid.Params        `json:"params"`
	Update edid.PartialParams `json:"update"`
	Locks  timing.Locks       `json:"locks"`
}

type analyzeRequest struct {
	History []assistant.HistoryEntry `json:"history"`
	Message string                   `json:"message"`
	Params  edid.Params              `json:"params"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":               "ok",
			"uptime":               time.Since(s.appeared).String(),
			"service":              s.name,
			"version":              version,
			"assistant_configured": s.agent.Configured(),
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(s.appeared).String(),
			"service": s.name,
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/api/presets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"presets": s.presets.List()})
	})

	s.router.GET("/api/presets/:id", func(c *gin.Context) {
		p, ok := s.presets.Resolve(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	s.router.POST("/api/edid/validate", func(c *gin.Context) {
		var params edid.Params
		if err := c.ShouldBindJSON(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		errs := edid.Validate(params)
		c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
	})

	s.router.POST("/api/edid/generate", s.handleGenerate)

	s.router.POST("/api/edid/recompute", func(c *gin.Context) {
		var req recomputeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		field, err := edid.ParseField(req.Changed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown field %q", req.Changed)})
			return
		}
		updated := timing.Recompute(req.Params, field, req.Value, req.Locks)
		c.JSON(http.StatusOK, gin.H{"params": updated})
	})

	s.router.POST("/api/edid/apply", func(c *gin.Context) {
		var req applyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated := timing.ApplyExternalUpdate(req.Params, req.Update, req.Locks)
		c.JSON(http.StatusOK, gin.H{"params": updated})
	})

	s.router.POST("/api/assistant/analyze", s.handleAnalyze)
}

func (s *Server) handleGenerate(c *gin.Context) {
	var params edid.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := edid.Validate(params); len(errs) != 0 {
		observability.RecordEncode(s.name, "invalid")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": errs})
		return
	}

	blob := edid.Encode(params)
	if len(blob) != edid.BaseBlockSize && len(blob) != edid.BaseBlockSize+edid.ExtensionBlockSize {
		// Should be unreachable after validation; treated as an internal
		// fault rather than a client error.
		observability.RecordEncode(s.name, "error")
		log.Error().Int("length", len(blob)).Msg("encoder produced invalid block length")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid data generated"})
		return
	}

	observability.RecordEncode(s.name, "ok")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", edid.Filename(params)))
	c.Data(http.StatusOK, "application/octet-stream", blob)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	if !s.agent.Configured() {
		observability.RecordAssistantRequest(s.name, http.StatusServiceUnavailable, false)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "assistant not configured; set " + config.EnvAssistantKey + " and an endpoint",
		})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := s.agent.Analyze(c.Request.Context(), req.History, req.Message, req.Params)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, assistant.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		observability.RecordAssistantRequest(s.name, status, false)
		log.Error().Err(err).Msg("assistant analyze failed")
		c.JSON(status, gin.H{"error": "failed to process request"})
		return
	}

	observability.RecordAssistantRequest(s.name, http.StatusOK, reply.Update != nil)
	c.JSON(http.StatusOK, reply)
}
