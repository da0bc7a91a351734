package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/dtos"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/MTND/Patrimoine-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type AssetController struct {
	service *services.AssetService
}

func NewAssetController(service *services.AssetService) *AssetController {
	return &AssetController{service: service}
}

// GetAllAssets handles GET requests to retrieve all active assets
func (c *AssetController) GetAllAssets(ctx *gin.Context) {
	assets, err := c.service.GetAllAssets()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assets)
}

// GetAssetByID handles GET requests to retrieve an asset by its ID
func (c *AssetController) GetAssetByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	asset, err := c.service.GetAssetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, asset)
}

// GetAssetsBySubcategory handles GET requests for one subcategory's assets
func (c *AssetController) GetAssetsBySubcategory(ctx *gin.Context) {
	subcategoryID, ok := idParam(ctx, "subcategoryId")
	if !ok {
		return
	}
	assets, err := c.service.GetAssetsBySubcategory(subcategoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assets)
}

// CreateAsset handles POST requests to create a new asset
func (c *AssetController) CreateAsset(ctx *gin.Context) {
	var payload dtos.CreateAssetDTO
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	asset, err := c.service.CreateAsset(&payload, actorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, asset)
}

// UpdateAsset handles PUT requests to update an asset's base fields
func (c *AssetController) UpdateAsset(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var payload dtos.CreateAssetDTO
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := c.service.UpdateAsset(id, &payload)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, asset)
}

// UpdateCustody handles PUT requests for direct custody edits. Audited
// custody changes should go through movements instead.
func (c *AssetController) UpdateCustody(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var payload dtos.UpdateCustodyDTO
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := c.service.UpdateCustody(id, &payload)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, asset)
}

// DeactivateAsset handles POST requests to retire an asset from the inventory
func (c *AssetController) DeactivateAsset(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.Deactivate(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetStats handles GET requests for dashboard statistics
func (c *AssetController) GetStats(ctx *gin.Context) {
	stats, err := c.service.Stats()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// UploadAttachment handles POST requests storing a document (facture,
// bon de livraison or image) against an asset
func (c *AssetController) UploadAttachment(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	kind := ctx.Param("kind")

	// Verify that the asset exists before touching storage
	if _, err := c.service.GetAssetByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "aucun fichier fourni"})
		return
	}
	defer file.Close()

	fileID, err := utils.UploadAttachment(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := c.service.SetAttachment(id, kind, fileID, header.Filename); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"fileId": fileID})
}

// ServeAttachment handles GET requests streaming back a stored document
func (c *AssetController) ServeAttachment(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	kind := ctx.Param("kind")

	fileID, filename, err := c.service.AttachmentFileID(id, kind)
	if err != nil {
		respondError(ctx, err)
		return
	}

	body, storedName, err := utils.DownloadAttachment(fileID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	if filename == "" {
		filename = storedName
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(ctx.Writer, body); err != nil {
		respondError(ctx, err)
	}
}

// ExportInventory handles GET requests for the Excel inventory export
func (c *AssetController) ExportInventory(ctx *gin.Context) {
	f, err := c.service.ExportInventory()
	if err != nil {
		respondError(ctx, err)
		return
	}

	filename := fmt.Sprintf("inventaire-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		respondError(ctx, err)
	}
}
