package models

import "time"

// Per-type detail records, joined 1:1 to the asset whose category implies the
// type. They are created with the asset and never outlive it.

type MaterielType string

const (
	MaterielOrdinateur MaterielType = "ordinateur"
	MaterielImprimante MaterielType = "imprimante"
	MaterielServeur    MaterielType = "serveur"
)

type AssetInformatiqueModel struct {
	Id              int          `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetId         int          `json:"assetId" gorm:"column:asset_id;uniqueIndex;not null"`
	TypeMateriel    MaterielType `json:"typeMateriel" gorm:"column:type_materiel;type:varchar(20)"`
	Marque          *string      `json:"marque" gorm:"type:varchar(100)"`
	Modele          *string      `json:"modele" gorm:"type:varchar(100)"`
	NumeroSerie     *string      `json:"numeroSerie" gorm:"column:numero_serie;type:varchar(100)"`
	DateGarantieFin *time.Time   `json:"dateGarantieFin" gorm:"column:date_garantie_fin;type:date"`
	Fournisseur     *string      `json:"fournisseur" gorm:"type:varchar(100)"`
}

type AssetVehiculeModel struct {
	Id                      int        `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetId                 int        `json:"assetId" gorm:"column:asset_id;uniqueIndex;not null"`
	Immatriculation         *string    `json:"immatriculation" gorm:"type:varchar(20)"`
	Marque                  *string    `json:"marque" gorm:"type:varchar(100)"`
	Modele                  *string    `json:"modele" gorm:"type:varchar(100)"`
	Kilometrage             float64    `json:"kilometrage" gorm:"type:numeric;default:0"`
	KilometragePrecedent    float64    `json:"kilometragePrecedent" gorm:"column:kilometrage_precedent;type:numeric;default:0"`
	DateAchat               *time.Time `json:"dateAchat" gorm:"column:date_achat;type:date"`
	DatePremiereCirculation *time.Time `json:"datePremiereCirculation" gorm:"column:date_premiere_circulation;type:date"`
	DateAssurance           *time.Time `json:"dateAssurance" gorm:"column:date_assurance;type:date"`
	DateControleTechnique   *time.Time `json:"dateControleTechnique" gorm:"column:date_controle_technique;type:date"`
}

type MobilierType string

const (
	MobilierBureau  MobilierType = "bureau"
	MobilierChaise  MobilierType = "chaise"
	MobilierArmoire MobilierType = "armoire"
)

type EtatConservation string

const (
	ConservationBon     EtatConservation = "bon"
	ConservationMoyen   EtatConservation = "moyen"
	ConservationMauvais EtatConservation = "mauvais"
)

type AssetMobilierModel struct {
	Id               int              `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetId          int              `json:"assetId" gorm:"column:asset_id;uniqueIndex;not null"`
	TypeMobilier     MobilierType     `json:"typeMobilier" gorm:"column:type_mobilier;type:varchar(20)"`
	EtatConservation EtatConservation `json:"etatConservation" gorm:"column:etat_conservation;type:varchar(20)"`
}
