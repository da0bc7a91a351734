package controllers

import (
	"net/http"
	"strconv"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/gin-gonic/gin"
)

// respondError translates the service error taxonomy to transport statuses:
// validation failures are 400, permission failures 403, missing records 404.
func respondError(ctx *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAccess(err):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// idParam parses the named path parameter as an integer id.
func idParam(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// currentUserID returns the acting user's id set by the auth middleware.
func currentUserID(ctx *gin.Context) (int, bool) {
	value, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return 0, false
	}
	id, ok := value.(int)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return 0, false
	}
	return id, true
}
