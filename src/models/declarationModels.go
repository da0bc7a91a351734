package models

import "time"

type DeclarationState string

const (
	DeclarationDraft           DeclarationState = "draft"
	DeclarationToApprove       DeclarationState = "to_approve"
	DeclarationManagerApproved DeclarationState = "manager_approved"
	DeclarationApproved        DeclarationState = "approved"
	DeclarationRejected        DeclarationState = "rejected"
)

// PerteModel is a loss declaration. It walks the approval chain
// draft → to_approve → manager_approved → approved|rejected; final approval
// deactivates the asset.
type PerteModel struct {
	Id      int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string      `json:"name" gorm:"type:varchar(50);unique;not null"`
	AssetId int         `json:"assetId" gorm:"column:asset_id;not null"`
	Asset   *AssetModel `json:"asset,omitempty" gorm:"foreignKey:AssetId;references:ID"`

	Motif              string    `json:"motif" gorm:"type:text;not null"`
	DatePerte          time.Time `json:"datePerte" gorm:"column:date_perte;type:date;not null"`
	Circonstances      *string   `json:"circonstances" gorm:"type:text"`
	LieuPerte          *string   `json:"lieuPerte" gorm:"column:lieu_perte;type:varchar(255)"`
	ActionsEntreprises *string   `json:"actionsEntreprises" gorm:"column:actions_entreprises;type:text"`
	RapportPolice      bool      `json:"rapportPolice" gorm:"column:rapport_police;type:boolean;default:false;not null"`

	DeclarerParId  int            `json:"declarerParId" gorm:"column:declarer_par_id;not null"`
	DeclarerPar    *UserModel     `json:"declarerPar,omitempty" gorm:"foreignKey:DeclarerParId;references:Id"`
	ManagerId      *int           `json:"managerId" gorm:"column:manager_id"`
	Manager        *EmployeeModel `json:"manager,omitempty" gorm:"foreignKey:ManagerId;references:Id"`
	ValideParId    *int           `json:"valideParId" gorm:"column:valide_par_id"`
	ValidePar      *UserModel     `json:"validePar,omitempty" gorm:"foreignKey:ValideParId;references:Id"`
	DateValidation *time.Time     `json:"dateValidation" gorm:"column:date_validation"`

	State   DeclarationState `json:"state" gorm:"type:varchar(20);default:'draft';not null"`
	Viewers []UserModel      `json:"viewers,omitempty" gorm:"many2many:perte_viewers;"`
}

func (PerteModel) TableName() string {
	return "pertes"
}

// PanneModel is a breakdown declaration, structurally identical to the loss
// pipeline but without asset deactivation on approval.
type PanneModel struct {
	Id      int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string      `json:"name" gorm:"type:varchar(50);unique;not null"`
	AssetId int         `json:"assetId" gorm:"column:asset_id;not null"`
	Asset   *AssetModel `json:"asset,omitempty" gorm:"foreignKey:AssetId;references:ID"`

	Description string    `json:"description" gorm:"type:text;not null"`
	DatePanne   time.Time `json:"datePanne" gorm:"column:date_panne;type:date;not null"`

	DeclarerParId  int            `json:"declarerParId" gorm:"column:declarer_par_id;not null"`
	DeclarerPar    *UserModel     `json:"declarerPar,omitempty" gorm:"foreignKey:DeclarerParId;references:Id"`
	ManagerId      *int           `json:"managerId" gorm:"column:manager_id"`
	Manager        *EmployeeModel `json:"manager,omitempty" gorm:"foreignKey:ManagerId;references:Id"`
	ValideParId    *int           `json:"valideParId" gorm:"column:valide_par_id"`
	ValidePar      *UserModel     `json:"validePar,omitempty" gorm:"foreignKey:ValideParId;references:Id"`
	DateValidation *time.Time     `json:"dateValidation" gorm:"column:date_validation"`

	State   DeclarationState `json:"state" gorm:"type:varchar(20);default:'draft';not null"`
	Viewers []UserModel      `json:"viewers,omitempty" gorm:"many2many:panne_viewers;"`
}

func (PanneModel) TableName() string {
	return "pannes"
}
