package review

import (
	"errors"
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

// --------------------------------------------------
// POST /generate-review
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if errors.Is(err, ErrNothingToProcess) {
		apperr.Message(c, http.StatusBadRequest, NothingToProcessMessage)
		return
	}
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
