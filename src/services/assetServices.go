package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/dtos"
	"github.com/MTND/Patrimoine-Backend/src/models"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssetService struct {
	db *gorm.DB
}

// NewAssetService creates a new instance of AssetService
func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{db: db}
}

var assetPreloads = []string{
	"Subcategory", "Subcategory.Category",
	"Department", "Employee", "Location", "Supplier",
	"Informatique", "Vehicule", "Mobilier",
}

func withAssetPreloads(db *gorm.DB) *gorm.DB {
	for _, preload := range assetPreloads {
		db = db.Preload(preload)
	}
	return db
}

// GetAllAssets retrieves all active Asset records
func (s *AssetService) GetAllAssets() ([]models.AssetModel, error) {
	var assets []models.AssetModel
	result := withAssetPreloads(s.db).
		Where("active = ?", true).
		Order("code ASC").
		Find(&assets)
	return assets, result.Error
}

// GetAssetByID retrieves an Asset record by its ID
func (s *AssetService) GetAssetByID(id int) (*models.AssetModel, error) {
	var asset models.AssetModel
	if err := withAssetPreloads(s.db).First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("asset", id)
		}
		return nil, err
	}
	return &asset, nil
}

// GetAssetsBySubcategory retrieves the active assets of one subcategory
func (s *AssetService) GetAssetsBySubcategory(subcategoryID int) ([]models.AssetModel, error) {
	var assets []models.AssetModel
	result := withAssetPreloads(s.db).
		Where("subcategory_id = ? AND active = ?", subcategoryID, true).
		Order("code ASC").
		Find(&assets)
	return assets, result.Error
}

// CreateAsset creates an Asset with its generated identity code, derives the
// general type from the subcategory's category, persists any supplied
// specialization payload, validates and stores the custom values, and appends
// the creation entry to the fiche de vie. All inside one transaction.
func (s *AssetService) CreateAsset(dto *dtos.CreateAssetDTO, actorID int) (*models.AssetModel, error) {
	var assetID int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var subcategory models.SubcategoryModel
		if err := tx.Preload("Category").First(&subcategory, dto.SubcategoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewValidationError("la sous-catégorie %d n'existe pas", dto.SubcategoryId)
			}
			return err
		}
		if subcategory.Category == nil {
			return apperrors.NewValidationError("la sous-catégorie %d n'a pas de catégorie parente", dto.SubcategoryId)
		}

		if err := validateCustomValues(tx, subcategory.Id, dto.CustomValues); err != nil {
			return err
		}

		ref, err := nextSequenceRef(tx, models.SeqAssetCode)
		if err != nil {
			return pkgerrors.Wrap(err, "reserve asset code")
		}
		creationDate := time.Now()
		if dto.DateAcquisition != nil {
			creationDate = *dto.DateAcquisition
		}
		code := fmt.Sprintf("%s-%s", creationDate.Format("2006-01-02"), ref)

		var valeur float64
		if dto.ValeurAcquisition != nil {
			valeur = *dto.ValeurAcquisition
		}

		asset := models.AssetModel{
			Name:              dto.Name,
			Code:              code,
			FullCode:          code,
			Type:              subcategory.Category.Type,
			SubcategoryId:     subcategory.Id,
			DateAcquisition:   dto.DateAcquisition,
			ValeurAcquisition: valeur,
			Status:            models.StatusStock,
			Active:            true,
			DepartmentId:      dto.DepartmentId,
			EmployeeId:        dto.EmployeeId,
			LocationId:        dto.LocationId,
			SupplierId:        dto.SupplierId,
			Image:             dto.Image,
			FactureFile:          dto.FactureFile,
			FactureFilename:      dto.FactureFilename,
			BonLivraisonFile:     dto.BonLivraisonFile,
			BonLivraisonFilename: dto.BonLivraisonFilename,
		}
		if len(dto.CustomValues) > 0 {
			raw, err := json.Marshal(dto.CustomValues)
			if err != nil {
				return pkgerrors.Wrap(err, "encode custom values")
			}
			asset.CustomValues = datatypes.JSON(raw)
		}

		if err := tx.Create(&asset).Error; err != nil {
			return pkgerrors.Wrap(err, "create asset")
		}
		assetID = asset.ID

		if err := createSpecialization(tx, &asset, dto); err != nil {
			return err
		}

		if err := recomputeFullCode(tx, asset.ID); err != nil {
			return err
		}

		actor := actorID
		description := fmt.Sprintf("Création de l'item %s", asset.Name)
		return appendFicheVie(tx, asset.ID, models.ActionCreation, description, &actor, nil)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"asset_id": assetID}).Info("asset created")
	return s.GetAssetByID(assetID)
}

// createSpecialization persists the detail record matching the asset's type
// when the payload supplies one. A payload for another type is a caller error.
func createSpecialization(tx *gorm.DB, asset *models.AssetModel, dto *dtos.CreateAssetDTO) error {
	supplied := 0
	if dto.Informatique != nil {
		supplied++
	}
	if dto.Vehicule != nil {
		supplied++
	}
	if dto.Mobilier != nil {
		supplied++
	}
	if supplied > 1 {
		return apperrors.NewValidationError("un seul bloc de détails spécifiques est autorisé")
	}

	switch asset.Type {
	case models.TypeInformatique:
		if dto.Vehicule != nil || dto.Mobilier != nil {
			return apperrors.NewValidationError("détails spécifiques incompatibles avec le type %s", asset.Type)
		}
		if dto.Informatique != nil {
			detail := *dto.Informatique
			detail.Id = 0
			detail.AssetId = asset.ID
			return tx.Create(&detail).Error
		}
	case models.TypeVehicule:
		if dto.Informatique != nil || dto.Mobilier != nil {
			return apperrors.NewValidationError("détails spécifiques incompatibles avec le type %s", asset.Type)
		}
		if dto.Vehicule != nil {
			detail := *dto.Vehicule
			detail.Id = 0
			detail.AssetId = asset.ID
			return tx.Create(&detail).Error
		}
	case models.TypeMobilier:
		if dto.Informatique != nil || dto.Vehicule != nil {
			return apperrors.NewValidationError("détails spécifiques incompatibles avec le type %s", asset.Type)
		}
		if dto.Mobilier != nil {
			detail := *dto.Mobilier
			detail.Id = 0
			detail.AssetId = asset.ID
			return tx.Create(&detail).Error
		}
	}
	return nil
}

// recomputeFullCode rereads the asset with its custody relations, derives the
// full code and persists it. Must run after every custody write.
func recomputeFullCode(tx *gorm.DB, assetID int) error {
	var asset models.AssetModel
	if err := tx.
		Preload("Department").
		Preload("Employee").
		Preload("Location").
		First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("asset", assetID)
		}
		return err
	}
	return tx.Model(&models.AssetModel{}).
		Where("id = ?", assetID).
		Update("full_code", asset.ComputeFullCode()).Error
}

// UpdateCustody writes the custody trio directly and recomputes the full
// code. It intentionally appends no fiche de vie entry: audited custody
// changes go through the movement engine.
func (s *AssetService) UpdateCustody(id int, custody *dtos.UpdateCustodyDTO) (*models.AssetModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.AssetModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"department_id": custody.DepartmentId,
				"employee_id":   custody.EmployeeId,
				"location_id":   custody.LocationId,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("asset", id)
		}
		return recomputeFullCode(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return s.GetAssetByID(id)
}

// UpdateAsset updates mutable base fields (name, acquisition data, custom
// values, attachments). The identity code and custody are out of its reach.
func (s *AssetService) UpdateAsset(id int, dto *dtos.CreateAssetDTO) (*models.AssetModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var asset models.AssetModel
		if err := tx.First(&asset, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("asset", id)
			}
			return err
		}

		updates := map[string]interface{}{}
		if dto.Name != "" {
			updates["name"] = dto.Name
		}
		if dto.DateAcquisition != nil {
			updates["date_acquisition"] = dto.DateAcquisition
		}
		if dto.ValeurAcquisition != nil {
			updates["valeur_acquisition"] = *dto.ValeurAcquisition
		}
		if dto.CustomValues != nil {
			if err := validateCustomValues(tx, asset.SubcategoryId, dto.CustomValues); err != nil {
				return err
			}
			raw, err := json.Marshal(dto.CustomValues)
			if err != nil {
				return pkgerrors.Wrap(err, "encode custom values")
			}
			updates["custom_values"] = datatypes.JSON(raw)
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&asset).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetAssetByID(id)
}

// Attachment kinds accepted by SetAttachment / AttachmentFileID.
const (
	AttachmentFacture      = "facture"
	AttachmentBonLivraison = "bon-livraison"
	AttachmentImage        = "image"
)

// SetAttachment stores the storage file ID (and original filename) of one of
// the asset's documents.
func (s *AssetService) SetAttachment(id int, kind string, fileID string, filename string) error {
	var updates map[string]interface{}
	switch kind {
	case AttachmentFacture:
		updates = map[string]interface{}{"facture_file": fileID, "facture_filename": filename}
	case AttachmentBonLivraison:
		updates = map[string]interface{}{"bon_livraison_file": fileID, "bon_livraison_filename": filename}
	case AttachmentImage:
		updates = map[string]interface{}{"image": fileID}
	default:
		return apperrors.NewValidationError("type de pièce jointe inconnu: %s", kind)
	}

	result := s.db.Model(&models.AssetModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("asset", id)
	}
	return nil
}

// AttachmentFileID returns the stored file ID and filename of one of the
// asset's documents.
func (s *AssetService) AttachmentFileID(id int, kind string) (string, string, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return "", "", err
	}

	var fileID, filename *string
	switch kind {
	case AttachmentFacture:
		fileID, filename = asset.FactureFile, asset.FactureFilename
	case AttachmentBonLivraison:
		fileID, filename = asset.BonLivraisonFile, asset.BonLivraisonFilename
	case AttachmentImage:
		fileID = asset.Image
	default:
		return "", "", apperrors.NewValidationError("type de pièce jointe inconnu: %s", kind)
	}
	if fileID == nil || *fileID == "" {
		return "", "", apperrors.NewNotFoundError("attachment", id)
	}
	name := ""
	if filename != nil {
		name = *filename
	}
	return *fileID, name, nil
}

// Deactivate marks the asset out of service and inactive. Reached only from
// the loss approval path.
func (s *AssetService) Deactivate(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deactivateAsset(tx, id)
	})
}

func deactivateAsset(tx *gorm.DB, assetID int) error {
	result := tx.Model(&models.AssetModel{}).
		Where("id = ?", assetID).
		Updates(map[string]interface{}{
			"etat":   models.StatusHS,
			"active": false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("asset", assetID)
	}
	return nil
}

// AssetStats aggregates asset counts for the dashboard
type AssetStats struct {
	Total    int64                        `json:"total"`
	ByStatus map[models.AssetStatus]int64 `json:"byStatus"`
	ByType   map[models.AssetType]int64   `json:"byType"`
}

// Stats counts active assets by status and by general type
func (s *AssetService) Stats() (*AssetStats, error) {
	stats := &AssetStats{
		ByStatus: map[models.AssetStatus]int64{},
		ByType:   map[models.AssetType]int64{},
	}
	if err := s.db.Model(&models.AssetModel{}).Where("active = ?", true).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type group struct {
		Key   string
		Count int64
	}
	var byStatus []group
	if err := s.db.Model(&models.AssetModel{}).
		Select("etat AS key, COUNT(*) AS count").
		Where("active = ?", true).
		Group("etat").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, g := range byStatus {
		stats.ByStatus[models.AssetStatus(g.Key)] = g.Count
	}

	var byType []group
	if err := s.db.Model(&models.AssetModel{}).
		Select("type AS key, COUNT(*) AS count").
		Where("active = ?", true).
		Group("type").
		Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, g := range byType {
		stats.ByType[models.AssetType(g.Key)] = g.Count
	}
	return stats, nil
}

// ExportInventory builds an Excel workbook with the full inventory for
// management reporting
func (s *AssetService) ExportInventory() (*excelize.File, error) {
	assets, err := s.GetAllAssets()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Inventaire"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Code", "Code complet", "Nom", "Type", "Sous-catégorie", "État",
		"Département", "Employé", "Localisation", "Date acquisition", "Valeur"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, asset := range assets {
		values := []interface{}{
			asset.Code,
			asset.FullCode,
			asset.Name,
			string(asset.Type),
			"",
			string(asset.Status),
			"",
			"",
			"",
			"",
			asset.ValeurAcquisition,
		}
		if asset.Subcategory != nil {
			values[4] = asset.Subcategory.Name
		}
		if asset.Department != nil {
			values[6] = asset.Department.Name
		}
		if asset.Employee != nil {
			values[7] = asset.Employee.Name
		}
		if asset.Location != nil {
			values[8] = asset.Location.Name
		}
		if asset.DateAcquisition != nil {
			values[9] = asset.DateAcquisition.Format("2006-01-02")
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}
	return f, nil
}
