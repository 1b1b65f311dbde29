package menu

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

type flavorRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// --------------------------------------------------
// GET /api/options/flavors
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	options, err := h.service.List(c.Request.Context())
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// --------------------------------------------------
// POST /api/options/flavors
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req flavorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	option, err := h.service.Create(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, option)
}

// --------------------------------------------------
// PUT /api/options/flavors/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	var req flavorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	option, err := h.service.Update(c.Request.Context(), id, req.Text, req.Category)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, option)
}

// --------------------------------------------------
// DELETE /api/options/flavors/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plat supprimé avec succès."})
}
