package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPanneRoutes(router *gin.Engine, service *services.PanneService) {
	controller := controllers.NewPanneController(service)

	// Protected routes
	panneGroup := router.Group("/pannes")
	panneGroup.Use(middleware.AuthMiddleware())
	{
		panneGroup.GET("", controller.GetAllPannes)
		panneGroup.GET("/:id", controller.GetPanneByID)
		panneGroup.GET("/unread-count", controller.UnreadCount)
		panneGroup.POST("/", controller.CreatePanne)

		// Approval pipeline
		panneGroup.POST("/:id/manager-approve", controller.ManagerApprove)
		panneGroup.POST("/:id/approve", controller.Approve)
		panneGroup.POST("/:id/reject", controller.Reject)
		panneGroup.POST("/:id/view", controller.MarkViewed)
	}
}
