package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MovementService struct {
	db *gorm.DB
}

// NewMovementService creates a new instance of MovementService
func NewMovementService(db *gorm.DB) *MovementService {
	return &MovementService{db: db}
}

var movementKindLabels = map[models.MovementKind]string{
	models.MovementAffectation:   "Affectation",
	models.MovementTransfert:     "Transfert",
	models.MovementReparation:    "Réparation / Maintenance",
	models.MovementAmortissement: "Amortissement",
	models.MovementSortie:        "Sortie définitive",
	models.MovementRetourStock:   "Retour en stock",
	models.MovementReforme:       "Réforme / Mise au rebut",
}

var movementKindActions = map[models.MovementKind]models.FicheVieAction{
	models.MovementAffectation:   models.ActionAffectation,
	models.MovementTransfert:     models.ActionTransfert,
	models.MovementReparation:    models.ActionReparation,
	models.MovementAmortissement: models.ActionAmortissement,
	models.MovementSortie:        models.ActionSortie,
	models.MovementRetourStock:   models.ActionRetourStock,
	models.MovementReforme:       models.ActionReforme,
}

var movementPreloads = []string{
	"Asset", "FromLocation", "FromEmployee",
	"ToDepartment", "ToEmployee", "ToLocation",
}

func withMovementPreloads(db *gorm.DB) *gorm.DB {
	for _, preload := range movementPreloads {
		db = db.Preload(preload)
	}
	return db
}

// GetAllMovements retrieves all Movement records, newest first
func (s *MovementService) GetAllMovements() ([]models.MovementModel, error) {
	var movements []models.MovementModel
	result := withMovementPreloads(s.db).
		Order("date DESC, id DESC").
		Find(&movements)
	return movements, result.Error
}

// GetMovementByID retrieves a Movement record by its ID
func (s *MovementService) GetMovementByID(id int) (*models.MovementModel, error) {
	var movement models.MovementModel
	if err := withMovementPreloads(s.db).First(&movement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("movement", id)
		}
		return nil, err
	}
	return &movement, nil
}

// GetMovementsByAssetID retrieves all movements of one asset, newest first
func (s *MovementService) GetMovementsByAssetID(assetID int) ([]models.MovementModel, error) {
	var movements []models.MovementModel
	result := withMovementPreloads(s.db).
		Where("asset_id = ?", assetID).
		Order("date DESC, id DESC").
		Find(&movements)
	return movements, result.Error
}

// CreateMovement registers a draft movement against an asset. The source
// location and employee are snapshots of the asset's custody at creation
// time, never caller-supplied.
func (s *MovementService) CreateMovement(movement *models.MovementModel) (*models.MovementModel, error) {
	if _, ok := movementKindLabels[movement.Kind]; !ok {
		return nil, apperrors.NewValidationError("type de mouvement inconnu: %s", movement.Kind)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var asset models.AssetModel
		if err := tx.First(&asset, movement.AssetId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("asset", movement.AssetId)
			}
			return err
		}

		ref, err := nextSequenceRef(tx, models.SeqMovementCode)
		if err != nil {
			return pkgerrors.Wrap(err, "reserve movement reference")
		}
		movement.Name = ref
		movement.State = models.MovementDraft
		movement.FromLocationId = asset.LocationId
		movement.FromEmployeeId = asset.EmployeeId
		if movement.Date.IsZero() {
			movement.Date = time.Now()
		}

		return tx.Create(movement).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetMovementByID(movement.Id)
}

// checkDestinationFields enforces the per-kind field requirements before any
// write happens.
func checkDestinationFields(movement *models.MovementModel) error {
	switch movement.Kind {
	case models.MovementAffectation:
		if movement.ToEmployeeId == nil {
			return apperrors.NewValidationError("l'employé destinataire est obligatoire pour une affectation")
		}
		if movement.ToDepartmentId == nil && movement.ToLocationId == nil {
			return apperrors.NewValidationError("au moins un champ de destination (département ou localisation) doit être renseigné pour une affectation")
		}
	case models.MovementTransfert:
		if movement.ToDepartmentId == nil && movement.ToEmployeeId == nil && movement.ToLocationId == nil {
			return apperrors.NewValidationError("au moins un champ de destination (département, employé ou localisation) doit être renseigné pour un transfert")
		}
	case models.MovementSortie:
		if movement.ToDepartmentId != nil || movement.ToEmployeeId != nil || movement.ToLocationId != nil {
			return apperrors.NewValidationError("les champs de destination doivent être vides pour une sortie définitive")
		}
	}
	return nil
}

// assetWritesForKind returns the column writes validation applies to the
// target asset, per the movement kind.
func assetWritesForKind(movement *models.MovementModel) map[string]interface{} {
	switch movement.Kind {
	case models.MovementAffectation:
		return map[string]interface{}{
			"department_id": movement.ToDepartmentId,
			"employee_id":   movement.ToEmployeeId,
			"location_id":   movement.ToLocationId,
			"etat":          models.StatusService,
		}
	case models.MovementTransfert:
		return map[string]interface{}{
			"department_id": movement.ToDepartmentId,
			"employee_id":   movement.ToEmployeeId,
			"location_id":   movement.ToLocationId,
		}
	case models.MovementReparation:
		return map[string]interface{}{
			"etat": models.StatusMaintenance,
		}
	case models.MovementSortie:
		return map[string]interface{}{
			"department_id": nil,
			"employee_id":   nil,
			"location_id":   nil,
			"etat":          models.StatusHS,
		}
	case models.MovementRetourStock:
		return map[string]interface{}{
			"location_id": movement.ToLocationId,
			"employee_id": nil,
			"etat":        models.StatusStock,
		}
	case models.MovementReforme:
		return map[string]interface{}{
			"location_id": nil,
			"employee_id": nil,
			"etat":        models.StatusReforme,
		}
	}
	return nil
}

// ValidateMovement flips a draft movement to validated and applies its
// effects to the target asset: custody/status writes, full-code
// recomputation and exactly one fiche de vie entry, all in one transaction.
// A movement validates exactly once; re-validating fails and writes nothing.
func (s *MovementService) ValidateMovement(id int, actorID int) (*models.MovementModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var movement models.MovementModel
		if err := tx.First(&movement, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("movement", id)
			}
			return err
		}

		if movement.State == models.MovementValidated {
			return apperrors.NewValidationError("ce mouvement a déjà été validé")
		}
		if err := checkDestinationFields(&movement); err != nil {
			return err
		}

		var asset models.AssetModel
		if err := tx.First(&asset, movement.AssetId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("asset", movement.AssetId)
			}
			return err
		}

		if writes := assetWritesForKind(&movement); writes != nil {
			if err := tx.Model(&models.AssetModel{}).
				Where("id = ?", asset.ID).
				Updates(writes).Error; err != nil {
				return pkgerrors.Wrap(err, "apply movement to asset")
			}
			if err := recomputeFullCode(tx, asset.ID); err != nil {
				return err
			}
		}

		if err := tx.Model(&movement).Update("state", models.MovementValidated).Error; err != nil {
			return err
		}

		motif := "N/A"
		if movement.Motif != nil && *movement.Motif != "" {
			motif = *movement.Motif
		}
		description := fmt.Sprintf("Mouvement de type '%s' validé. Motif: %s",
			movementKindLabels[movement.Kind], motif)
		actor := actorID
		movementID := movement.Id
		return appendFicheVie(tx, asset.ID, movementKindActions[movement.Kind], description, &actor, &movementID)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"movement_id": id}).Info("movement validated")
	return s.GetMovementByID(id)
}

// DeleteMovement removes a draft movement. Validated movements are immutable.
func (s *MovementService) DeleteMovement(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var movement models.MovementModel
		if err := tx.First(&movement, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("movement", id)
			}
			return err
		}
		if movement.State == models.MovementValidated {
			return apperrors.NewValidationError("un mouvement validé ne peut pas être supprimé")
		}
		return tx.Delete(&movement).Error
	})
}
