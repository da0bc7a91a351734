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

// PanneService drives the breakdown declaration pipeline. Same approval chain
// as losses, but final approval only records the decision: repairs are
// handled through the movement engine, never applied automatically.
type PanneService struct {
	db    *gorm.DB
	roles RoleChecker
}

// NewPanneService creates a new instance of PanneService
func NewPanneService(db *gorm.DB, roles RoleChecker) *PanneService {
	return &PanneService{db: db, roles: roles}
}

func (s *PanneService) GetAllPannes() ([]models.PanneModel, error) {
	var pannes []models.PanneModel
	result := s.db.
		Preload("Asset").
		Preload("DeclarerPar").
		Preload("Manager").
		Preload("ValidePar").
		Order("id DESC").
		Find(&pannes)
	return pannes, result.Error
}

func (s *PanneService) GetPanneByID(id int) (*models.PanneModel, error) {
	var panne models.PanneModel
	err := s.db.
		Preload("Asset").
		Preload("DeclarerPar").
		Preload("Manager").
		Preload("ValidePar").
		Preload("Viewers").
		First(&panne, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("panne", id)
		}
		return nil, err
	}
	return &panne, nil
}

// CreatePanne registers a breakdown report in draft state, resolving the
// declarer's manager once.
func (s *PanneService) CreatePanne(panne *models.PanneModel) (*models.PanneModel, error) {
	if panne.Description == "" {
		return nil, apperrors.NewValidationError("la description de la panne est obligatoire")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var asset models.AssetModel
		if err := tx.First(&asset, panne.AssetId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("asset", panne.AssetId)
			}
			return err
		}

		ref, err := nextSequenceRef(tx, models.SeqPanneCode)
		if err != nil {
			return pkgerrors.Wrap(err, "reserve panne reference")
		}
		panne.Name = ref
		panne.State = models.DeclarationDraft
		if panne.DatePanne.IsZero() {
			panne.DatePanne = time.Now()
		}

		manager, err := resolveManager(tx, panne.DeclarerParId)
		if err != nil {
			return err
		}
		if manager != nil {
			panne.ManagerId = &manager.Id
		}

		return tx.Create(panne).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPanneByID(panne.Id)
}

func (s *PanneService) Submit(id int) (*models.PanneModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		panne, err := lockPanne(tx, id)
		if err != nil {
			return err
		}
		if panne.State != models.DeclarationDraft {
			return apperrors.NewValidationError("seule une déclaration en brouillon peut être soumise")
		}
		return tx.Model(panne).Update("state", models.DeclarationToApprove).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPanneByID(id)
}

func (s *PanneService) ManagerApprove(id int, actorID int) (*models.PanneModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		panne, err := lockPanne(tx, id)
		if err != nil {
			return err
		}
		if panne.State != models.DeclarationToApprove {
			return apperrors.NewValidationError("la déclaration n'est pas en attente de validation manager")
		}
		if err := requireManager(tx, panne.ManagerId, actorID); err != nil {
			return err
		}
		return tx.Model(panne).Update("state", models.DeclarationManagerApproved).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPanneByID(id)
}

// Approve finalizes the breakdown report. The asset's custody is untouched;
// only the decision and its trace are recorded.
func (s *PanneService) Approve(id int, actorID int) (*models.PanneModel, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		panne, err := lockPanne(tx, id)
		if err != nil {
			return err
		}
		if panne.State != models.DeclarationManagerApproved {
			return apperrors.NewValidationError("la déclaration doit être validée par le manager avant l'approbation finale")
		}

		now := time.Now()
		if err := tx.Model(panne).Updates(map[string]interface{}{
			"state":           models.DeclarationApproved,
			"valide_par_id":   actorID,
			"date_validation": now,
		}).Error; err != nil {
			return err
		}

		actor := actorID
		description := fmt.Sprintf("Panne approuvée (%s): %s", panne.Name, panne.Description)
		return appendFicheVie(tx, panne.AssetId, models.ActionAutre, description, &actor, nil)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"panne_id": id}).Info("breakdown declaration approved")
	return s.GetPanneByID(id)
}

func (s *PanneService) Reject(id int, actorID int) (*models.PanneModel, error) {
	isAdmin, err := s.roles.HasRole(actorID, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		panne, err := lockPanne(tx, id)
		if err != nil {
			return err
		}

		switch panne.State {
		case models.DeclarationToApprove:
			if err := requireManager(tx, panne.ManagerId, actorID); err != nil && !isAdmin {
				return err
			}
		case models.DeclarationManagerApproved:
			if !isAdmin {
				return apperrors.NewAccessError("seul un administrateur peut effectuer cette action")
			}
		default:
			return apperrors.NewValidationError("la déclaration ne peut plus être rejetée dans l'état %s", panne.State)
		}

		now := time.Now()
		return tx.Model(panne).Updates(map[string]interface{}{
			"state":           models.DeclarationRejected,
			"valide_par_id":   actorID,
			"date_validation": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPanneByID(id)
}

func (s *PanneService) MarkViewed(id int, userID int) error {
	panne, err := s.GetPanneByID(id)
	if err != nil {
		return err
	}
	for _, viewer := range panne.Viewers {
		if viewer.Id == userID {
			return nil
		}
	}
	return s.db.Model(panne).Association("Viewers").Append(&models.UserModel{Id: userID})
}

func (s *PanneService) UnreadCountForUser(userID int) (int64, error) {
	var count int64
	viewed := s.db.Table("panne_viewers").
		Select("panne_model_id").
		Where("user_model_id = ?", userID)
	err := s.db.Model(&models.PanneModel{}).
		Joins("JOIN employees ON employees.id = pannes.manager_id").
		Where("pannes.state = ? AND employees.user_id = ?", models.DeclarationToApprove, userID).
		Where("pannes.id NOT IN (?)", viewed).
		Count(&count).Error
	return count, err
}

func (s *PanneService) requireAdmin(actorID int) error {
	ok, err := s.roles.HasRole(actorID, models.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewAccessError("seul un administrateur peut effectuer cette action")
	}
	return nil
}

func lockPanne(tx *gorm.DB, id int) (*models.PanneModel, error) {
	var panne models.PanneModel
	if err := tx.First(&panne, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("panne", id)
		}
		return nil, err
	}
	return &panne, nil
}
