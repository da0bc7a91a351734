package models

import "time"

type FicheVieAction string

const (
	ActionCreation      FicheVieAction = "creation"
	ActionAffectation   FicheVieAction = "affectation"
	ActionTransfert     FicheVieAction = "transfert"
	ActionReparation    FicheVieAction = "reparation"
	ActionAmortissement FicheVieAction = "amortissement"
	ActionSortie        FicheVieAction = "sortie"
	ActionReforme       FicheVieAction = "reforme"
	ActionRetourStock   FicheVieAction = "retour_stock"
	ActionAutre         FicheVieAction = "autre"
)

// FicheVieModel is one entry of an asset's life sheet. Entries are append-only:
// once written they are never updated or deleted. Reads are ordered
// date desc, id desc. Asset name and code are denormalized for reporting.
type FicheVieModel struct {
	Id      int         `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetId int         `json:"assetId" gorm:"column:asset_id;not null"`
	Asset   *AssetModel `json:"asset,omitempty" gorm:"foreignKey:AssetId;references:ID"`

	AssetName string `json:"assetName" gorm:"column:asset_name;type:varchar(100)"`
	AssetCode string `json:"assetCode" gorm:"column:asset_code;type:varchar(100)"`

	Date        time.Time      `json:"date" gorm:"not null"`
	Action      FicheVieAction `json:"action" gorm:"type:varchar(20);not null"`
	Description string         `json:"description" gorm:"type:text"`

	UtilisateurId  *int       `json:"utilisateurId" gorm:"column:utilisateur_id"`
	Utilisateur    *UserModel `json:"utilisateur,omitempty" gorm:"foreignKey:UtilisateurId;references:Id"`
	UtilisateurName string    `json:"utilisateurName" gorm:"column:utilisateur_name;type:varchar(255)"`

	MouvementId *int           `json:"mouvementId" gorm:"column:mouvement_id"`
	Mouvement   *MovementModel `json:"mouvement,omitempty" gorm:"foreignKey:MouvementId;references:Id"`
}

func (FicheVieModel) TableName() string {
	return "fiche_vie"
}
