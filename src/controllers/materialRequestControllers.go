package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MaterialRequestController struct {
	service *services.MaterialRequestService
}

func NewMaterialRequestController(service *services.MaterialRequestService) *MaterialRequestController {
	return &MaterialRequestController{service: service}
}

type allocateRequest struct {
	AssetIds []int `json:"assetIds" binding:"required"`
}

// GetAllRequests handles GET requests to retrieve all material requests
func (c *MaterialRequestController) GetAllRequests(ctx *gin.Context) {
	requests, err := c.service.GetAllRequests()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// GetRequestByID handles GET requests for a single material request
func (c *MaterialRequestController) GetRequestByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	request, err := c.service.GetRequestByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}

// CreateRequest handles POST requests to open a material request
func (c *MaterialRequestController) CreateRequest(ctx *gin.Context) {
	var request models.MaterialRequestModel
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	request.DemandeurId = userID

	created, err := c.service.CreateRequest(&request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Approve handles POST requests to approve a pending request
func (c *MaterialRequestController) Approve(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	request, err := c.service.Approve(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}

// Reject handles POST requests to reject a pending request
func (c *MaterialRequestController) Reject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	request, err := c.service.Reject(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}

// Allocate handles POST requests binding concrete assets to an approved request
func (c *MaterialRequestController) Allocate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req allocateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request, err := c.service.Allocate(id, req.AssetIds)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}
