package insights

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /api/sif-synthesis
// Failures are reported in the payload status, never as an HTTP error.
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Synthesize(c.Request.Context()))
}
