package services

import (
	"errors"
	"fmt"

	"github.com/MTND/Patrimoine-Backend/src/models"
	"gorm.io/gorm"
)

// Defaults applied when a well-known counter row is first used.
var sequenceDefaults = map[string]models.SequenceModel{
	models.SeqAssetCode:    {Prefix: "ORG", Padding: 4},
	models.SeqMovementCode: {Prefix: "MVT", Padding: 4},
	models.SeqPerteCode:    {Prefix: "PRT", Padding: 4},
	models.SeqPanneCode:    {Prefix: "PNN", Padding: 4},
	models.SeqDemandeCode:  {Prefix: "DEM", Padding: 4},
}

type SequenceService struct {
	db *gorm.DB
}

// NewSequenceService creates a new instance of SequenceService
func NewSequenceService(db *gorm.DB) *SequenceService {
	return &SequenceService{db: db}
}

// nextSequenceNumber reserves the next value of the named counter inside tx.
// The increment runs as a single UPDATE ... SET next_number = next_number + 1,
// so the storage engine's row lock serializes concurrent callers: gaps can
// happen when a transaction rolls back, duplicates cannot.
func nextSequenceNumber(tx *gorm.DB, code string) (int, *models.SequenceModel, error) {
	result := tx.Model(&models.SequenceModel{}).
		Where("code = ?", code).
		Update("next_number", gorm.Expr("next_number + 1"))
	if result.Error != nil {
		return 0, nil, result.Error
	}
	if result.RowsAffected == 0 {
		seq, ok := sequenceDefaults[code]
		if !ok {
			seq = models.SequenceModel{Prefix: "SEQ", Padding: 4}
		}
		seq.Code = code
		seq.NextNumber = 2
		if err := tx.Create(&seq).Error; err != nil {
			return 0, nil, err
		}
		return 1, &seq, nil
	}

	var seq models.SequenceModel
	if err := tx.Where("code = ?", code).First(&seq).Error; err != nil {
		return 0, nil, err
	}
	return seq.NextNumber - 1, &seq, nil
}

// nextSequenceRef reserves the next counter value and formats it as a
// reference, e.g. "MVT-0007".
func nextSequenceRef(tx *gorm.DB, code string) (string, error) {
	n, seq, err := nextSequenceNumber(tx, code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%0*d", seq.Prefix, seq.Padding, n), nil
}

// NextRef reserves and formats the next reference for the named counter in
// its own transaction.
func (s *SequenceService) NextRef(code string) (string, error) {
	var ref string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		ref, txErr = nextSequenceRef(tx, code)
		return txErr
	})
	return ref, err
}

// GetSequence returns the counter row for the given code without advancing it.
func (s *SequenceService) GetSequence(code string) (*models.SequenceModel, error) {
	var seq models.SequenceModel
	if err := s.db.Where("code = ?", code).First(&seq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if def, ok := sequenceDefaults[code]; ok {
				def.Code = code
				def.NextNumber = 1
				return &def, nil
			}
		}
		return nil, err
	}
	return &seq, nil
}
