package routes

import (
	"github.com/MTND/Patrimoine-Backend/src/controllers"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupDirectoryRoutes(router *gin.Engine, service *services.DirectoryService) {
	controller := controllers.NewDirectoryController(service)

	departmentGroup := router.Group("/departments")
	departmentGroup.Use(middleware.AuthMiddleware())
	{
		departmentGroup.GET("", controller.GetAllDepartments)
		departmentGroup.POST("/", controller.CreateDepartment)
	}

	employeeGroup := router.Group("/employees")
	employeeGroup.Use(middleware.AuthMiddleware())
	{
		employeeGroup.GET("", controller.GetAllEmployees)
		employeeGroup.POST("/", controller.CreateEmployee)
	}

	locationGroup := router.Group("/locations")
	locationGroup.Use(middleware.AuthMiddleware())
	{
		locationGroup.GET("", controller.GetAllLocations)
		locationGroup.POST("/", controller.CreateLocation)
	}

	supplierGroup := router.Group("/suppliers")
	supplierGroup.Use(middleware.AuthMiddleware())
	{
		supplierGroup.GET("", controller.GetAllSuppliers)
		supplierGroup.POST("/", controller.CreateSupplier)
	}
}
