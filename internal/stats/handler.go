package stats

import (
	"net/http"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) period(c *gin.Context) (Period, bool) {
	p, err := ParsePeriod(c.Query("period"))
	if err != nil {
		apperr.Write(c, h.log, err)
		return "", false
	}
	return p, true
}

// GET /dashboard?period=
func (h *Handler) Dashboard(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	d, err := h.service.Dashboard(c.Request.Context(), p)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GET /api/server-stats?period=
func (h *Handler) ServerStats(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	ranking, err := h.service.ServerRanking(c.Request.Context(), p)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// GET /api/menu-performance?period=
func (h *Handler) MenuPerformance(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	dishes, err := h.service.MenuPerformance(c.Request.Context(), p)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GET /api/qualitative-synthesis?period=
func (h *Handler) QualitativeSynthesis(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	synthesis, err := h.service.QualitativeSynthesis(c.Request.Context(), p)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, synthesis)
}

// POST /api/reset-data
func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Toutes les données statistiques ont été réinitialisées."})
}
