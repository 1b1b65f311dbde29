package staff

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

type serverRequest struct {
	Name string `json:"name"`
}

// GET /api/servers
func (h *Handler) List(c *gin.Context) {
	servers, err := h.service.List(c.Request.Context())
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, servers)
}

// POST /api/servers
func (h *Handler) Create(c *gin.Context) {
	var req serverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	server, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, server)
}

// PUT /api/servers/:id
func (h *Handler) Update(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	var req serverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	server, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, server)
}

// DELETE /api/servers/:id
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
	c.JSON(http.StatusOK, gin.H{"message": "Serveur supprimé avec succès."})
}
