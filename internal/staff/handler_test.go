package staff

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStaffTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(NewService(NewInMemoryRepository()), zap.NewNop())
	r.GET("/api/servers", h.List)
	r.POST("/api/servers", h.Create)
	r.PUT("/api/servers/:id", h.Update)
	r.DELETE("/api/servers/:id", h.Delete)

	return r
}

func doJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateAndConflict(t *testing.T) {
	r := setupStaffTestRouter()

	w := doJSON(r, http.MethodPost, "/api/servers", map[string]string{"name": "  jean-PIERRE   dupont "})
	require.Equal(t, http.StatusCreated, w.Code)

	var created Server
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Jean-Pierre Dupont", created.Name)

	w = doJSON(r, http.MethodPost, "/api/servers", map[string]string{"name": "JEAN-PIERRE DUPONT"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/api/servers", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateDelete(t *testing.T) {
	r := setupStaffTestRouter()

	w := doJSON(r, http.MethodPost, "/api/servers", map[string]string{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPut, "/api/servers/1", map[string]string{"name": "alicia"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/api/servers/42", map[string]string{"name": "bob"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/api/servers/abc", map[string]string{"name": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/servers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Serveur supprimé avec succès.")

	w = doJSON(r, http.MethodGet, "/api/servers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
