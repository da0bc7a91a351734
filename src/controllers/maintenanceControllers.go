package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	service *services.MaintenanceService
}

func NewMaintenanceController(service *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{service: service}
}

// GetAllMaintenances handles GET requests to retrieve all maintenance records
func (c *MaintenanceController) GetAllMaintenances(ctx *gin.Context) {
	maintenances, err := c.service.GetAllMaintenances()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, maintenances)
}

// GetMaintenancesByAssetID handles GET requests for an asset's maintenance history
func (c *MaintenanceController) GetMaintenancesByAssetID(ctx *gin.Context) {
	assetID, ok := idParam(ctx, "assetId")
	if !ok {
		return
	}
	maintenances, err := c.service.GetMaintenancesByAssetID(assetID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, maintenances)
}

// CreateMaintenance handles POST requests to plan a maintenance operation
func (c *MaintenanceController) CreateMaintenance(ctx *gin.Context) {
	var maintenance models.MaintenanceModel
	if err := ctx.ShouldBindJSON(&maintenance); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateMaintenance(&maintenance)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateMaintenance handles PUT requests to update a planned operation
func (c *MaintenanceController) UpdateMaintenance(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var maintenance models.MaintenanceModel
	if err := ctx.ShouldBindJSON(&maintenance); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateMaintenance(id, &maintenance)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Complete handles POST requests marking an operation as done
func (c *MaintenanceController) Complete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	maintenance, err := c.service.Complete(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, maintenance)
}

// DeleteMaintenance handles DELETE requests for a maintenance record
func (c *MaintenanceController) DeleteMaintenance(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteMaintenance(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
