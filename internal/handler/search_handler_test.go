package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchRouter(h *SearchHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/search", h.Search)
	return router
}

func TestSearchHandler(t *testing.T) {
	t.Run("missing query is rejected", func(t *testing.T) {
		router := searchRouter(NewSearchHandler(nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		router := searchRouter(NewSearchHandler(nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=%20%20", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("search disabled answers empty sets", func(t *testing.T) {
		router := searchRouter(NewSearchHandler(nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=servo", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string][]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body["products"])
		assert.Empty(t, body["guides"])
		assert.Empty(t, body["lessons"])
		assert.Contains(t, body, "products")
		assert.Contains(t, body, "guides")
		assert.Contains(t, body, "lessons")
	})
}
