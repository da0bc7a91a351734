package models

// SequenceModel is a named counter row. NextNumber is only ever advanced with
// the row locked, so concurrent callers get distinct values (gaps are fine,
// duplicates are not).
type SequenceModel struct {
	Id         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Code       string `json:"code" gorm:"type:varchar(100);unique;not null"`
	Prefix     string `json:"prefix" gorm:"type:varchar(20);not null"`
	Padding    int    `json:"padding" gorm:"type:int;default:4;not null"`
	NextNumber int    `json:"nextNumber" gorm:"column:next_number;type:int;default:1;not null"`
}

// Well-known sequence codes.
const (
	SeqAssetCode    = "patrimoine.asset.code"
	SeqMovementCode = "patrimoine.mouvement.code"
	SeqPerteCode    = "patrimoine.perte.code"
	SeqPanneCode    = "patrimoine.panne.code"
	SeqDemandeCode  = "patrimoine.demande.materiel.code"
)
