package services

import (
	"errors"
	"fmt"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	db *gorm.DB
}

// NewMaintenanceService creates a new instance of MaintenanceService
func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

func (s *MaintenanceService) GetAllMaintenances() ([]models.MaintenanceModel, error) {
	var maintenances []models.MaintenanceModel
	result := s.db.
		Preload("Asset").
		Order("date_intervention DESC").
		Find(&maintenances)
	return maintenances, result.Error
}

func (s *MaintenanceService) GetMaintenancesByAssetID(assetID int) ([]models.MaintenanceModel, error) {
	var maintenances []models.MaintenanceModel
	result := s.db.
		Where("asset_id = ?", assetID).
		Order("date_intervention DESC").
		Find(&maintenances)
	return maintenances, result.Error
}

func (s *MaintenanceService) CreateMaintenance(maintenance *models.MaintenanceModel) (*models.MaintenanceModel, error) {
	var asset models.AssetModel
	if err := s.db.First(&asset, maintenance.AssetId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("asset", maintenance.AssetId)
		}
		return nil, err
	}
	if maintenance.State == "" {
		maintenance.State = models.MaintenancePlanifie
	}
	if err := s.db.Create(maintenance).Error; err != nil {
		return nil, err
	}
	return maintenance, nil
}

func (s *MaintenanceService) UpdateMaintenance(id int, updated *models.MaintenanceModel) (*models.MaintenanceModel, error) {
	var maintenance models.MaintenanceModel
	if err := s.db.First(&maintenance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("maintenance", id)
		}
		return nil, err
	}
	updated.Id = id
	if err := s.db.Model(&maintenance).Updates(updated).Error; err != nil {
		return nil, err
	}
	return &maintenance, nil
}

// Complete marks a planned intervention as performed and traces it on the
// asset's life sheet.
func (s *MaintenanceService) Complete(id int, actorID int) (*models.MaintenanceModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var maintenance models.MaintenanceModel
		if err := tx.First(&maintenance, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("maintenance", id)
			}
			return err
		}
		if maintenance.State == models.MaintenanceEffectue {
			return apperrors.NewValidationError("cet entretien est déjà marqué comme effectué")
		}

		if err := tx.Model(&maintenance).Update("state", models.MaintenanceEffectue).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Entretien %s effectué le %s",
			maintenance.Kind, maintenance.DateIntervention.Format("2006-01-02"))
		actor := actorID
		return appendFicheVie(tx, maintenance.AssetId, models.ActionReparation, description, &actor, nil)
	})
	if err != nil {
		return nil, err
	}

	var maintenance models.MaintenanceModel
	if err := s.db.Preload("Asset").First(&maintenance, id).Error; err != nil {
		return nil, err
	}
	return &maintenance, nil
}

func (s *MaintenanceService) DeleteMaintenance(id int) error {
	result := s.db.Delete(&models.MaintenanceModel{}, id)
	return result.Error
}
