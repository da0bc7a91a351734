package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type DirectoryController struct {
	service *services.DirectoryService
}

func NewDirectoryController(service *services.DirectoryService) *DirectoryController {
	return &DirectoryController{service: service}
}

func (c *DirectoryController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.service.GetAllDepartments()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, departments)
}

func (c *DirectoryController) CreateDepartment(ctx *gin.Context) {
	var department models.DepartmentModel
	if err := ctx.ShouldBindJSON(&department); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateDepartment(&department)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *DirectoryController) GetAllEmployees(ctx *gin.Context) {
	employees, err := c.service.GetAllEmployees()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

func (c *DirectoryController) CreateEmployee(ctx *gin.Context) {
	var employee models.EmployeeModel
	if err := ctx.ShouldBindJSON(&employee); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateEmployee(&employee)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *DirectoryController) GetAllLocations(ctx *gin.Context) {
	locations, err := c.service.GetAllLocations()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

func (c *DirectoryController) CreateLocation(ctx *gin.Context) {
	var location models.LocationModel
	if err := ctx.ShouldBindJSON(&location); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateLocation(&location)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *DirectoryController) GetAllSuppliers(ctx *gin.Context) {
	suppliers, err := c.service.GetAllSuppliers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, suppliers)
}

func (c *DirectoryController) CreateSupplier(ctx *gin.Context) {
	var supplier models.SupplierModel
	if err := ctx.ShouldBindJSON(&supplier); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateSupplier(&supplier)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
