package feedback

import (
	"fmt"
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

// GET /api/internal-feedback?status=&search=
func (h *Handler) List(c *gin.Context) {
	filter := Filter{
		Status: Status(c.Query("status")),
		Search: c.Query("search"),
	}

	entries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type statusRequest struct {
	Status Status `json:"status"`
}

// PUT /api/internal-feedback/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour."})
}
