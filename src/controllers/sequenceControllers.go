package controllers

import (
	"net/http"

	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type SequenceController struct {
	service *services.SequenceService
}

func NewSequenceController(service *services.SequenceService) *SequenceController {
	return &SequenceController{service: service}
}

// GetSequence handles GET requests to inspect a code counter
func (c *SequenceController) GetSequence(ctx *gin.Context) {
	code := ctx.Param("code")
	sequence, err := c.service.GetSequence(code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sequence)
}
