package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPerteRoutes(router *gin.Engine, service *services.PerteService) {
	controller := controllers.NewPerteController(service)

	// Protected routes
	perteGroup := router.Group("/pertes")
	perteGroup.Use(middleware.AuthMiddleware())
	{
		perteGroup.GET("", controller.GetAllPertes)
		perteGroup.GET("/:id", controller.GetPerteByID)
		perteGroup.GET("/unread-count", controller.UnreadCount)
		perteGroup.POST("/", controller.CreatePerte)

		// Approval pipeline
		perteGroup.POST("/:id/manager-approve", controller.ManagerApprove)
		perteGroup.POST("/:id/approve", controller.Approve)
		perteGroup.POST("/:id/reject", controller.Reject)
		perteGroup.POST("/:id/view", controller.MarkViewed)
	}
}
