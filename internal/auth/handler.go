package auth

import (
	"errors"
	"net/http"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvalidCredentials = "Identifiants invalides."

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		apperr.Message(c, http.StatusBadRequest, apperr.MsgInvalidInput)
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		h.log.Info("admin login rejected", zap.String("client_ip", c.ClientIP()))
		apperr.Message(c, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		apperr.Write(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
