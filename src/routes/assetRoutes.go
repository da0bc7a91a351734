package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAssetRoutes(router *gin.Engine, service *services.AssetService) {
	controller := controllers.NewAssetController(service)

	// Protected routes
	assetGroup := router.Group("/assets")
	assetGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		assetGroup.GET("", controller.GetAllAssets)
		assetGroup.GET("/:id", controller.GetAssetByID)
		assetGroup.GET("/subcategory/:subcategoryId", controller.GetAssetsBySubcategory)
		assetGroup.POST("/", controller.CreateAsset)
		assetGroup.PUT("/:id", controller.UpdateAsset)
		assetGroup.PUT("/:id/custody", controller.UpdateCustody)
		assetGroup.POST("/:id/deactivate", controller.DeactivateAsset)

		// Attachments
		assetGroup.POST("/:id/attachments/:kind", controller.UploadAttachment)
		assetGroup.GET("/:id/attachments/:kind", controller.ServeAttachment)

		// Reporting
		assetGroup.GET("/stats", controller.GetStats)
		assetGroup.GET("/export", controller.ExportInventory)
	}
}
