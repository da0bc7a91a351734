package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFicheVieRoutes(router *gin.Engine, service *services.FicheVieService) {
	controller := controllers.NewFicheVieController(service)

	// Protected routes
	ficheVieGroup := router.Group("/fiche-vie")
	ficheVieGroup.Use(middleware.AuthMiddleware())
	{
		ficheVieGroup.GET("", controller.GetAll)
		ficheVieGroup.GET("/asset/:assetId", controller.GetByAssetID)
		ficheVieGroup.POST("/", controller.Create)
	}
}
