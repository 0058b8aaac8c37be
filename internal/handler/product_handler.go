package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/internal/validation"
	"github.com/robokitlab/catalog-api/pkg/response"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(service service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListPublic serves the anonymous catalog index: published rows only.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	filter := dto.ProductFilter{
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		Difficulty:      c.Query("difficulty"),
		Tag:             c.Query("tag"),
		TeacherFriendly: validation.BoolFromForm(c.Query("teacher_friendly")),
		PublishedOnly:   true,
	}

	products, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) GetPublicBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAdmin serves the dashboard index: drafts included.
func (h *ProductHandler) ListAdmin(c *gin.Context) {
	filter := dto.ProductFilter{
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		Difficulty:      c.Query("difficulty"),
		Tag:             c.Query("tag"),
		TeacherFriendly: validation.BoolFromForm(c.Query("teacher_friendly")),
	}

	products, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) GetAdminByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) Save(c *gin.Context) {
	var payload dto.ProductSavePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.service.Save(c.Request.Context(), payload)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product saved successfully", "id": product.ID, "product": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
