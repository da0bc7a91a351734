package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSequenceRoutes(router *gin.Engine, service *services.SequenceService) {
	controller := controllers.NewSequenceController(service)

	sequenceGroup := router.Group("/sequences")
	sequenceGroup.Use(middleware.AuthMiddleware())
	{
		sequenceGroup.GET("/:code", controller.GetSequence)
	}
}
