package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/pkg/response"
)

type SearchHandler struct {
	service service.SearchService
}

func NewSearchHandler(service service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	// Search disabled: answer with empty result sets instead of failing.
	if h.service == nil {
		c.JSON(http.StatusOK, gin.H{
			"products": []any{},
			"guides":   []any{},
			"lessons":  []any{},
		})
		return
	}

	results, err := h.service.Search(query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
