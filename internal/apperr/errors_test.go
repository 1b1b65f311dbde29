package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", fmt.Errorf("%w: name required", ErrInvalidInput), http.StatusBadRequest, MsgInvalidInput},
		{"not found", fmt.Errorf("server 9: %w", ErrNotFound), http.StatusNotFound, MsgNotFound},
		{"conflict", ErrConflict, http.StatusConflict, MsgConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, MsgConflict},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, MsgUnauthorized},
		{"upstream", fmt.Errorf("%w: openai 503", ErrUpstream), http.StatusInternalServerError, MsgUpstream},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Status(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestWrite_DoesNotLeakInternalText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		Write(c, zap.NewNop(), errors.New("pq: password authentication failed for user gallopin"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, MsgInternal, body["error"])
	assert.NotContains(t, w.Body.String(), "password")
}
