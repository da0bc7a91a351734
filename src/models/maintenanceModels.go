package models

import "time"

type MaintenanceKind string

const (
	MaintenancePreventif MaintenanceKind = "preventif"
	MaintenanceCorrectif MaintenanceKind = "correctif"
)

type MaintenanceState string

const (
	MaintenancePlanifie MaintenanceState = "planifie"
	MaintenanceEffectue MaintenanceState = "effectue"
)

type MaintenanceModel struct {
	Id      int         `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetId int         `json:"assetId" gorm:"column:asset_id;not null"`
	Asset   *AssetModel `json:"asset,omitempty" gorm:"foreignKey:AssetId;references:ID"`

	DateIntervention time.Time        `json:"dateIntervention" gorm:"column:date_intervention;type:date;not null"`
	Kind             MaintenanceKind  `json:"kind" gorm:"column:type_entretien;type:varchar(20)"`
	ProchainRappel   *time.Time       `json:"prochainRappel" gorm:"column:prochain_rappel;type:date"`
	Description      *string          `json:"description" gorm:"type:text"`
	Cout             float64          `json:"cout" gorm:"type:numeric;default:0"`
	Prestataire      *string          `json:"prestataire" gorm:"type:varchar(100)"`
	State            MaintenanceState `json:"state" gorm:"type:varchar(20);default:'planifie';not null"`
}
