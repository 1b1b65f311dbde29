package menu

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

func setupMenuTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(NewService(NewInMemoryRepository()), zap.NewNop())
	r.GET("/api/options/flavors", h.List)
	r.POST("/api/options/flavors", h.Create)
	r.PUT("/api/options/flavors/:id", h.Update)
	r.DELETE("/api/options/flavors/:id", h.Delete)

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

func TestHandler_CRUD(t *testing.T) {
	r := setupMenuTestRouter()

	w := doJSON(r, http.MethodPost, "/api/options/flavors", map[string]string{
		"text": "Crème brûlée", "category": "Desserts",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created FlavorOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)

	w = doJSON(r, http.MethodPut, "/api/options/flavors/1", map[string]string{
		"text": "Crème brûlée à la vanille", "category": "Desserts",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/options/flavors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Crème brûlée à la vanille")

	w = doJSON(r, http.MethodDelete, "/api/options/flavors/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Validation(t *testing.T) {
	r := setupMenuTestRouter()

	w := doJSON(r, http.MethodPost, "/api/options/flavors", map[string]string{"text": "Frites"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/options/flavors/abc", map[string]string{"text": "x", "category": "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/options/flavors/99", map[string]string{"text": "x", "category": "y"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
