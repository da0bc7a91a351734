package services

import (
	"errors"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
	"gorm.io/gorm"
)

type FicheVieService struct {
	db *gorm.DB
}

// NewFicheVieService creates a new instance of FicheVieService
func NewFicheVieService(db *gorm.DB) *FicheVieService {
	return &FicheVieService{db: db}
}

// appendFicheVie writes one life-sheet entry inside the caller's transaction.
// The asset's name and code and the acting user's name are denormalized so the
// printable history stays readable even if the source records change later.
// Callers inside multi-write operations must treat a failure here as a failure
// of the whole operation.
func appendFicheVie(tx *gorm.DB, assetID int, action models.FicheVieAction, description string, userID *int, movementID *int) error {
	_, err := createFicheVie(tx, assetID, action, description, userID, movementID)
	return err
}

func createFicheVie(tx *gorm.DB, assetID int, action models.FicheVieAction, description string, userID *int, movementID *int) (*models.FicheVieModel, error) {
	var asset models.AssetModel
	if err := tx.Select("id", "name", "code").First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("asset", assetID)
		}
		return nil, err
	}

	entry := models.FicheVieModel{
		AssetId:       asset.ID,
		AssetName:     asset.Name,
		AssetCode:     asset.Code,
		Date:          time.Now(),
		Action:        action,
		Description:   description,
		UtilisateurId: userID,
		MouvementId:   movementID,
	}
	if userID != nil {
		var user models.UserModel
		if err := tx.Select("id", "name", "username").First(&user, *userID).Error; err == nil {
			if user.Name != "" {
				entry.UtilisateurName = user.Name
			} else {
				entry.UtilisateurName = user.Username
			}
		}
	}

	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Append writes one entry in its own transaction. Used for manual history
// annotations; lifecycle operations append within their own transactions.
func (s *FicheVieService) Append(assetID int, action models.FicheVieAction, description string, userID *int) (*models.FicheVieModel, error) {
	var entry *models.FicheVieModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created, err := createFicheVie(tx, assetID, action, description, userID, nil)
		if err != nil {
			return err
		}
		entry = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByAssetID returns the full life sheet of an asset, newest first
// (date desc, then id desc as tiebreak).
func (s *FicheVieService) GetByAssetID(assetID int) ([]models.FicheVieModel, error) {
	var entries []models.FicheVieModel
	result := s.db.
		Where("asset_id = ?", assetID).
		Preload("Utilisateur").
		Preload("Mouvement").
		Order("date DESC, id DESC").
		Find(&entries)
	return entries, result.Error
}

// GetAll returns every entry across assets, newest first.
func (s *FicheVieService) GetAll() ([]models.FicheVieModel, error) {
	var entries []models.FicheVieModel
	result := s.db.
		Preload("Utilisateur").
		Order("date DESC, id DESC").
		Find(&entries)
	return entries, result.Error
}
