package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMaterialRequestRoutes(router *gin.Engine, service *services.MaterialRequestService) {
	controller := controllers.NewMaterialRequestController(service)

	// Protected routes
	requestGroup := router.Group("/material-requests")
	requestGroup.Use(middleware.AuthMiddleware())
	{
		requestGroup.GET("", controller.GetAllRequests)
		requestGroup.GET("/:id", controller.GetRequestByID)
		requestGroup.POST("/", controller.CreateRequest)

		// Processing
		requestGroup.POST("/:id/approve", controller.Approve)
		requestGroup.POST("/:id/reject", controller.Reject)
		requestGroup.POST("/:id/allocate", controller.Allocate)
	}
}
