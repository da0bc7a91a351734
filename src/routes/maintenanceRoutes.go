package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMaintenanceRoutes(router *gin.Engine, service *services.MaintenanceService) {
	controller := controllers.NewMaintenanceController(service)

	// Protected routes
	maintenanceGroup := router.Group("/maintenances")
	maintenanceGroup.Use(middleware.AuthMiddleware())
	{
		maintenanceGroup.GET("", controller.GetAllMaintenances)
		maintenanceGroup.GET("/asset/:assetId", controller.GetMaintenancesByAssetID)
		maintenanceGroup.POST("/", controller.CreateMaintenance)
		maintenanceGroup.PUT("/:id", controller.UpdateMaintenance)
		maintenanceGroup.POST("/:id/complete", controller.Complete)
		maintenanceGroup.DELETE("/:id", controller.DeleteMaintenance)
	}
}
