package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PanneController struct {
	service *services.PanneService
}

func NewPanneController(service *services.PanneService) *PanneController {
	return &PanneController{service: service}
}

// GetAllPannes handles GET requests to retrieve all breakdown declarations
func (c *PanneController) GetAllPannes(ctx *gin.Context) {
	pannes, err := c.service.GetAllPannes()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pannes)
}

// GetPanneByID handles GET requests for a single breakdown declaration
func (c *PanneController) GetPanneByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	panne, err := c.service.GetPanneByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panne)
}

// CreatePanne handles POST requests to declare a breakdown. The declaration
// is submitted to the declarer's manager right away.
func (c *PanneController) CreatePanne(ctx *gin.Context) {
	var panne models.PanneModel
	if err := ctx.ShouldBindJSON(&panne); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	panne.DeclarerParId = userID

	created, err := c.service.CreatePanne(&panne)
	if err != nil {
		respondError(ctx, err)
		return
	}
	submitted, err := c.service.Submit(created.Id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, submitted)
}

// ManagerApprove handles POST requests for the first approval step
func (c *PanneController) ManagerApprove(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	panne, err := c.service.ManagerApprove(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panne)
}

// Approve handles POST requests for the final approval step
func (c *PanneController) Approve(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	panne, err := c.service.Approve(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panne)
}

// Reject handles POST requests to reject a declaration
func (c *PanneController) Reject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	panne, err := c.service.Reject(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panne)
}

// MarkViewed handles POST requests recording that the caller saw the declaration
func (c *PanneController) MarkViewed(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := c.service.MarkViewed(id, userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// UnreadCount handles GET requests for the caller's pending-review counter
func (c *PanneController) UnreadCount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	count, err := c.service.UnreadCountForUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}
