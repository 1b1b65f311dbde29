package router

import (
	"context"
	"net/http"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
	"github.com/KwnLnrd/Gallopin/internal/menu"
	"github.com/KwnLnrd/Gallopin/internal/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type menuReader interface {
	Grouped(ctx context.Context) (menu.Groups, error)
}

type staffReader interface {
	List(ctx context.Context) ([]staff.Server, error)
}

// PublicHandler serves what the review page needs before the customer has
// picked anything.
type PublicHandler struct {
	menu  menuReader
	staff staffReader
	log   *zap.Logger
}

func NewPublicHandler(menu menuReader, staff staffReader, log *zap.Logger) *PublicHandler {
	return &PublicHandler{menu: menu, staff: staff, log: log}
}

// GET /api/public/data
func (h *PublicHandler) Data(c *gin.Context) {
	ctx := c.Request.Context()

	servers, err := h.staff.List(ctx)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	flavors, err := h.menu.Grouped(ctx)
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"servers": servers,
		"flavors": flavors,
	})
}
