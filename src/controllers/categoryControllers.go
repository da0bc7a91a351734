package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// GetAllCategories handles GET requests to retrieve the taxonomy
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	if t := ctx.Query("type"); t != "" {
		categories, err := c.service.GetCategoriesByType(models.AssetType(t))
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, categories)
		return
	}

	categories, err := c.service.GetAllCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST requests to create a category
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category models.CategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateCategory(&category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateCategory handles PUT requests to update a category
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var category models.CategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateCategory(id, &category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeactivateCategory handles POST requests to soft-disable a category
func (c *CategoryController) DeactivateCategory(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeactivateCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// DeleteCategory handles DELETE requests; referenced categories are refused
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetSubcategoriesByCategory handles GET requests for one category's leaves
func (c *CategoryController) GetSubcategoriesByCategory(ctx *gin.Context) {
	categoryID, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	subcategories, err := c.service.GetSubcategoriesByCategory(categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subcategories)
}

// CreateSubcategory handles POST requests to create a subcategory
func (c *CategoryController) CreateSubcategory(ctx *gin.Context) {
	var subcategory models.SubcategoryModel
	if err := ctx.ShouldBindJSON(&subcategory); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateSubcategory(&subcategory)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// CreateCustomField handles POST requests to add a field definition
func (c *CategoryController) CreateCustomField(ctx *gin.Context) {
	var field models.CustomFieldModel
	if err := ctx.ShouldBindJSON(&field); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateCustomField(&field)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// DeleteCustomField handles DELETE requests for a field definition
func (c *CategoryController) DeleteCustomField(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteCustomField(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
