package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PerteController struct {
	service *services.PerteService
}

func NewPerteController(service *services.PerteService) *PerteController {
	return &PerteController{service: service}
}

// GetAllPertes handles GET requests to retrieve all loss declarations
func (c *PerteController) GetAllPertes(ctx *gin.Context) {
	pertes, err := c.service.GetAllPertes()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pertes)
}

// GetPerteByID handles GET requests for a single loss declaration
func (c *PerteController) GetPerteByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	perte, err := c.service.GetPerteByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, perte)
}

// CreatePerte handles POST requests to declare a loss. The declaration
// is submitted to the declarer's manager right away.
func (c *PerteController) CreatePerte(ctx *gin.Context) {
	var perte models.PerteModel
	if err := ctx.ShouldBindJSON(&perte); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	perte.DeclarerParId = userID

	created, err := c.service.CreatePerte(&perte)
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
func (c *PerteController) ManagerApprove(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	perte, err := c.service.ManagerApprove(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, perte)
}

// Approve handles POST requests for the final approval step
func (c *PerteController) Approve(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	perte, err := c.service.Approve(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, perte)
}

// Reject handles POST requests to reject a declaration
func (c *PerteController) Reject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	perte, err := c.service.Reject(id, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, perte)
}

// MarkViewed handles POST requests recording that the caller saw the declaration
func (c *PerteController) MarkViewed(ctx *gin.Context) {
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
func (c *PerteController) UnreadCount(ctx *gin.Context) {
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
