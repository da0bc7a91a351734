package services

import (
	"errors"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// MaterialRequestService drives the material request workflow:
// pending → approved | rejected, then approved → allocated once assets are
// linked to the request.
type MaterialRequestService struct {
	db *gorm.DB
}

// NewMaterialRequestService creates a new instance of MaterialRequestService
func NewMaterialRequestService(db *gorm.DB) *MaterialRequestService {
	return &MaterialRequestService{db: db}
}

func (s *MaterialRequestService) GetAllRequests() ([]models.MaterialRequestModel, error) {
	var requests []models.MaterialRequestModel
	result := s.db.
		Preload("Demandeur").
		Preload("Lignes").
		Preload("Lignes.Subcategory").
		Preload("Lignes.Department").
		Preload("Lignes.Location").
		Preload("Lignes.Employee").
		Preload("AllocatedAssets").
		Order("date_demande DESC").
		Find(&requests)
	return requests, result.Error
}

func (s *MaterialRequestService) GetRequestByID(id int) (*models.MaterialRequestModel, error) {
	var request models.MaterialRequestModel
	err := s.db.
		Preload("Demandeur").
		Preload("Lignes").
		Preload("Lignes.Subcategory").
		Preload("Lignes.Department").
		Preload("Lignes.Location").
		Preload("Lignes.Employee").
		Preload("AllocatedAssets").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("material request", id)
		}
		return nil, err
	}
	return &request, nil
}

// CreateRequest registers a request with its lines in pending state.
func (s *MaterialRequestService) CreateRequest(request *models.MaterialRequestModel) (*models.MaterialRequestModel, error) {
	if request.MotifDemande == "" {
		return nil, apperrors.NewValidationError("le motif général de la demande est obligatoire")
	}
	if len(request.Lignes) == 0 {
		return nil, apperrors.NewValidationError("une demande doit contenir au moins une ligne")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range request.Lignes {
			var subcategory models.SubcategoryModel
			if err := tx.First(&subcategory, request.Lignes[i].SubcategoryId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewValidationError("la sous-catégorie %d n'existe pas", request.Lignes[i].SubcategoryId)
				}
				return err
			}
		}

		ref, err := nextSequenceRef(tx, models.SeqDemandeCode)
		if err != nil {
			return pkgerrors.Wrap(err, "reserve request reference")
		}
		request.Name = ref
		request.State = models.RequestPending
		request.DateDemande = time.Now()
		request.DateTraitement = nil

		return tx.Create(request).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetRequestByID(request.Id)
}

// Approve accepts a pending request.
func (s *MaterialRequestService) Approve(id int) (*models.MaterialRequestModel, error) {
	return s.process(id, models.RequestApproved)
}

// Reject refuses a pending request.
func (s *MaterialRequestService) Reject(id int) (*models.MaterialRequestModel, error) {
	return s.process(id, models.RequestRejected)
}

func (s *MaterialRequestService) process(id int, next models.MaterialRequestState) (*models.MaterialRequestModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var request models.MaterialRequestModel
		if err := tx.First(&request, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("material request", id)
			}
			return err
		}
		if request.State != models.RequestPending {
			return apperrors.NewValidationError("la demande doit être en attente de validation pour être traitée")
		}
		now := time.Now()
		return tx.Model(&request).Updates(map[string]interface{}{
			"state":           next,
			"date_traitement": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetRequestByID(id)
}

// Allocate links the granted assets to an approved request and finalizes it.
func (s *MaterialRequestService) Allocate(id int, assetIDs []int) (*models.MaterialRequestModel, error) {
	if len(assetIDs) == 0 {
		return nil, apperrors.NewValidationError("au moins un matériel doit être alloué")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var request models.MaterialRequestModel
		if err := tx.First(&request, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("material request", id)
			}
			return err
		}
		if request.State != models.RequestApproved {
			return apperrors.NewValidationError("la demande doit être approuvée avant l'allocation")
		}

		var assets []models.AssetModel
		if err := tx.Find(&assets, assetIDs).Error; err != nil {
			return err
		}
		if len(assets) != len(assetIDs) {
			return apperrors.NewValidationError("un ou plusieurs matériels à allouer n'existent pas")
		}

		if err := tx.Model(&request).Association("AllocatedAssets").Replace(assets); err != nil {
			return err
		}
		return tx.Model(&request).Update("state", models.RequestAllocated).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetRequestByID(id)
}
