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

// PerteService drives the loss declaration pipeline:
// draft → to_approve → manager_approved → approved | rejected.
// Final approval takes the asset out of service and deactivates it.
type PerteService struct {
	db    *gorm.DB
	roles RoleChecker
}

// NewPerteService creates a new instance of PerteService
func NewPerteService(db *gorm.DB, roles RoleChecker) *PerteService {
	return &PerteService{db: db, roles: roles}
}

func (s *PerteService) GetAllPertes() ([]models.PerteModel, error) {
	var pertes []models.PerteModel
	result := s.db.
		Preload("Asset").
		Preload("DeclarerPar").
		Preload("Manager").
		Preload("ValidePar").
		Order("id DESC").
		Find(&pertes)
	return pertes, result.Error
}

func (s *PerteService) GetPerteByID(id int) (*models.PerteModel, error) {
	var perte models.PerteModel
	err := s.db.
		Preload("Asset").
		Preload("DeclarerPar").
		Preload("Manager").
		Preload("ValidePar").
		Preload("Viewers").
		First(&perte, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("perte", id)
		}
		return nil, err
	}
	return &perte, nil
}

// CreatePerte registers a loss declaration in draft state. The manager is
// resolved once here, from the declarer's employee record's direct superior.
func (s *PerteService) CreatePerte(perte *models.PerteModel) (*models.PerteModel, error) {
	if perte.Motif == "" {
		return nil, apperrors.NewValidationError("le motif de la perte est obligatoire")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var asset models.AssetModel
		if err := tx.First(&asset, perte.AssetId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("asset", perte.AssetId)
			}
			return err
		}

		ref, err := nextSequenceRef(tx, models.SeqPerteCode)
		if err != nil {
			return pkgerrors.Wrap(err, "reserve perte reference")
		}
		perte.Name = ref
		perte.State = models.DeclarationDraft
		if perte.DatePerte.IsZero() {
			perte.DatePerte = time.Now()
		}

		manager, err := resolveManager(tx, perte.DeclarerParId)
		if err != nil {
			return err
		}
		if manager != nil {
			perte.ManagerId = &manager.Id
		}

		return tx.Create(perte).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPerteByID(perte.Id)
}

// Submit moves a draft declaration into the manager's queue.
func (s *PerteService) Submit(id int) (*models.PerteModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		perte, err := lockPerte(tx, id)
		if err != nil {
			return err
		}
		if perte.State != models.DeclarationDraft {
			return apperrors.NewValidationError("seule une déclaration en brouillon peut être soumise")
		}
		return tx.Model(perte).Update("state", models.DeclarationToApprove).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPerteByID(id)
}

// ManagerApprove advances to_approve → manager_approved. The caller must be
// the manager computed at declaration time.
func (s *PerteService) ManagerApprove(id int, actorID int) (*models.PerteModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		perte, err := lockPerte(tx, id)
		if err != nil {
			return err
		}
		if perte.State != models.DeclarationToApprove {
			return apperrors.NewValidationError("la déclaration n'est pas en attente de validation manager")
		}
		if err := requireManager(tx, perte.ManagerId, actorID); err != nil {
			return err
		}
		return tx.Model(perte).Update("state", models.DeclarationManagerApproved).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPerteByID(id)
}

// Approve is the administrator-level final approval. The target asset goes
// out of service and inactive, and the life sheet records the loss; asset
// write, state flip and fiche append succeed or fail as one unit.
func (s *PerteService) Approve(id int, actorID int) (*models.PerteModel, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		perte, err := lockPerte(tx, id)
		if err != nil {
			return err
		}
		if perte.State != models.DeclarationManagerApproved {
			return apperrors.NewValidationError("la déclaration doit être validée par le manager avant l'approbation finale")
		}

		if err := deactivateAsset(tx, perte.AssetId); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(perte).Updates(map[string]interface{}{
			"state":           models.DeclarationApproved,
			"valide_par_id":   actorID,
			"date_validation": now,
		}).Error; err != nil {
			return err
		}

		actor := actorID
		description := fmt.Sprintf("Perte approuvée (%s). Motif: %s", perte.Name, perte.Motif)
		return appendFicheVie(tx, perte.AssetId, models.ActionSortie, description, &actor, nil)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"perte_id": id}).Info("loss declaration approved")
	return s.GetPerteByID(id)
}

// Reject terminates the declaration. The computed manager may reject at the
// to_approve stage; an administrator may reject at either review stage.
func (s *PerteService) Reject(id int, actorID int) (*models.PerteModel, error) {
	isAdmin, err := s.roles.HasRole(actorID, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		perte, err := lockPerte(tx, id)
		if err != nil {
			return err
		}

		switch perte.State {
		case models.DeclarationToApprove:
			if err := requireManager(tx, perte.ManagerId, actorID); err != nil && !isAdmin {
				return err
			}
		case models.DeclarationManagerApproved:
			if !isAdmin {
				return apperrors.NewAccessError("seul un administrateur peut effectuer cette action")
			}
		default:
			return apperrors.NewValidationError("la déclaration ne peut plus être rejetée dans l'état %s", perte.State)
		}

		now := time.Now()
		return tx.Model(perte).Updates(map[string]interface{}{
			"state":           models.DeclarationRejected,
			"valide_par_id":   actorID,
			"date_validation": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPerteByID(id)
}

// MarkViewed records that a user opened the declaration.
func (s *PerteService) MarkViewed(id int, userID int) error {
	perte, err := s.GetPerteByID(id)
	if err != nil {
		return err
	}
	for _, viewer := range perte.Viewers {
		if viewer.Id == userID {
			return nil
		}
	}
	return s.db.Model(perte).Association("Viewers").Append(&models.UserModel{Id: userID})
}

// UnreadCountForUser counts declarations awaiting the user's manager review
// that the user has not opened yet.
func (s *PerteService) UnreadCountForUser(userID int) (int64, error) {
	var count int64
	viewed := s.db.Table("perte_viewers").
		Select("perte_model_id").
		Where("user_model_id = ?", userID)
	err := s.db.Model(&models.PerteModel{}).
		Joins("JOIN employees ON employees.id = pertes.manager_id").
		Where("pertes.state = ? AND employees.user_id = ?", models.DeclarationToApprove, userID).
		Where("pertes.id NOT IN (?)", viewed).
		Count(&count).Error
	return count, err
}

func (s *PerteService) requireAdmin(actorID int) error {
	ok, err := s.roles.HasRole(actorID, models.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewAccessError("seul un administrateur peut effectuer cette action")
	}
	return nil
}

func lockPerte(tx *gorm.DB, id int) (*models.PerteModel, error) {
	var perte models.PerteModel
	if err := tx.First(&perte, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("perte", id)
		}
		return nil, err
	}
	return &perte, nil
}

// requireManager checks that the actor's employee record is the declaration's
// computed manager.
func requireManager(tx *gorm.DB, managerID *int, actorID int) error {
	if managerID == nil {
		return apperrors.NewAccessError("aucun manager n'est associé à cette déclaration")
	}
	employee, err := employeeForUser(tx, actorID)
	if err != nil {
		return err
	}
	if employee == nil || employee.Id != *managerID {
		return apperrors.NewAccessError("seul le manager du déclarant peut effectuer cette action")
	}
	return nil
}
