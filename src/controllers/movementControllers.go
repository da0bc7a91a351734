package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MovementController struct {
	service *services.MovementService
}

func NewMovementController(service *services.MovementService) *MovementController {
	return &MovementController{service: service}
}

// GetAllMovements handles GET requests to retrieve all movements
func (c *MovementController) GetAllMovements(ctx *gin.Context) {
	movements, err := c.service.GetAllMovements()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movements)
}

// GetMovementByID handles GET requests for a single movement
func (c *MovementController) GetMovementByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	movement, err := c.service.GetMovementByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movement)
}

// GetMovementsByAssetID handles GET requests for an asset's movements
func (c *MovementController) GetMovementsByAssetID(ctx *gin.Context) {
	assetID, ok := idParam(ctx, "assetId")
	if !ok {
		return
	}
	movements, err := c.service.GetMovementsByAssetID(assetID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movements)
}

// CreateMovement handles POST requests to register a draft movement
func (c *MovementController) CreateMovement(ctx *gin.Context) {
	var movement models.MovementModel
	if err := ctx.ShouldBindJSON(&movement); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateMovement(&movement)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// ValidateMovement handles POST requests to validate a draft movement
func (c *MovementController) ValidateMovement(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	movement, err := c.service.ValidateMovement(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movement)
}

// DeleteMovement handles DELETE requests; only drafts can be removed
func (c *MovementController) DeleteMovement(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteMovement(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
