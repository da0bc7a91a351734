package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type FicheVieController struct {
	service *services.FicheVieService
}

func NewFicheVieController(service *services.FicheVieService) *FicheVieController {
	return &FicheVieController{service: service}
}

type createFicheVieRequest struct {
	AssetId     int                   `json:"assetId" binding:"required"`
	Action      models.FicheVieAction `json:"action" binding:"required"`
	Description string                `json:"description" binding:"required"`
}

// GetAll handles GET requests to retrieve every life-sheet entry
func (c *FicheVieController) GetAll(ctx *gin.Context) {
	entries, err := c.service.GetAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetByAssetID handles GET requests for one asset's life sheet,
// newest entries first
func (c *FicheVieController) GetByAssetID(ctx *gin.Context) {
	assetID, ok := idParam(ctx, "assetId")
	if !ok {
		return
	}
	entries, err := c.service.GetByAssetID(assetID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Create handles POST requests to append a manual entry
func (c *FicheVieController) Create(ctx *gin.Context) {
	var req createFicheVieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entry, err := c.service.Append(req.AssetId, req.Action, req.Description, &userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}
