// Package apperr holds the error kinds shared by every domain package and
// their mapping to HTTP responses.
//
// Domain code wraps one of the sentinels:
//
//	return fmt.Errorf("%w: server name is required", apperr.ErrInvalidInput)
//
// Handlers hand the error to Write, which picks the status code and a fixed
// French message. The wrapped text is logged, never sent to the client.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream dependency failed")
)

// User-facing messages.
const (
	MsgInvalidInput = "Requête invalide : champ manquant ou incorrect."
	MsgNotFound     = "Ressource introuvable."
	MsgConflict     = "Cette ressource existe déjà."
	MsgUnauthorized = "Authentification requise."
	MsgRateLimited  = "Trop de requêtes, veuillez réessayer plus tard."
	MsgUpstream     = "Le service externe est indisponible, veuillez réessayer plus tard."
	MsgInternal     = "Une erreur interne est survenue."
)

const uniqueViolation = "23505"

// Status returns the HTTP status and message for err.
func Status(err error) (int, string) {
	var pgErr *pgconn.PgError

	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, MsgInvalidInput
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, MsgConflict
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return http.StatusConflict, MsgConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, MsgUnauthorized
	case errors.Is(err, ErrUpstream):
		return http.StatusInternalServerError, MsgUpstream
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// Write aborts the request with the JSON body {"error": <message>}.
// Server-side failures are logged with the original error.
func Write(c *gin.Context, log *zap.Logger, err error) {
	status, msg := Status(err)

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	} else {
		_ = c.Error(err)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// Message aborts with a fixed status and message, for errors detected in the
// handler itself (malformed JSON, bad path parameter).
func Message(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// IsUniqueViolation reports whether err is a Postgres unique constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
