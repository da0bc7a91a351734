package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(router *gin.Engine, service *services.CategoryService) {
	controller := controllers.NewCategoryController(service)

	// Protected routes
	categoryGroup := router.Group("/categories")
	categoryGroup.Use(middleware.AuthMiddleware())
	{
		categoryGroup.GET("", controller.GetAllCategories)
		categoryGroup.POST("/", controller.CreateCategory)
		categoryGroup.PUT("/:id", controller.UpdateCategory)
		categoryGroup.POST("/:id/deactivate", controller.DeactivateCategory)
		categoryGroup.DELETE("/:id", controller.DeleteCategory)

		categoryGroup.GET("/:id/subcategories", controller.GetSubcategoriesByCategory)
	}

	subcategoryGroup := router.Group("/subcategories")
	subcategoryGroup.Use(middleware.AuthMiddleware())
	{
		subcategoryGroup.POST("/", controller.CreateSubcategory)
	}

	fieldGroup := router.Group("/custom-fields")
	fieldGroup.Use(middleware.AuthMiddleware())
	{
		fieldGroup.POST("/", controller.CreateCustomField)
		fieldGroup.DELETE("/:id", controller.DeleteCustomField)
	}
}
