package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMovementRoutes(router *gin.Engine, service *services.MovementService) {
	controller := controllers.NewMovementController(service)

	// Protected routes
	movementGroup := router.Group("/movements")
	movementGroup.Use(middleware.AuthMiddleware())
	{
		movementGroup.GET("", controller.GetAllMovements)
		movementGroup.GET("/:id", controller.GetMovementByID)
		movementGroup.GET("/asset/:assetId", controller.GetMovementsByAssetID)
		movementGroup.POST("/", controller.CreateMovement)
		movementGroup.POST("/:id/validate", controller.ValidateMovement)
		movementGroup.DELETE("/:id", controller.DeleteMovement)
	}
}
