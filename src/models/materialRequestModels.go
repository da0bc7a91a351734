package models

import "time"

type MaterialRequestState string

const (
	RequestPending   MaterialRequestState = "pending"
	RequestApproved  MaterialRequestState = "approved"
	RequestRejected  MaterialRequestState = "rejected"
	RequestAllocated MaterialRequestState = "allocated"
)

type MaterialRequestModel struct {
	Id           int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string     `json:"name" gorm:"type:varchar(50);unique;not null"`
	DemandeurId  int        `json:"demandeurId" gorm:"column:demandeur_id;not null"`
	Demandeur    *UserModel `json:"demandeur,omitempty" gorm:"foreignKey:DemandeurId;references:Id"`
	MotifDemande string     `json:"motifDemande" gorm:"column:motif_demande;type:text;not null"`

	State          MaterialRequestState `json:"state" gorm:"type:varchar(20);default:'pending';not null"`
	DateDemande    time.Time            `json:"dateDemande" gorm:"column:date_demande;not null"`
	DateTraitement *time.Time           `json:"dateTraitement" gorm:"column:date_traitement"`

	Lignes          []MaterialRequestLineModel `json:"lignes,omitempty" gorm:"foreignKey:DemandeId;constraint:OnDelete:CASCADE"`
	AllocatedAssets []AssetModel               `json:"allocatedAssets,omitempty" gorm:"many2many:material_request_assets;"`
}

type MaterialRequestLineModel struct {
	Id            int               `json:"id" gorm:"primaryKey;autoIncrement"`
	DemandeId     int               `json:"demandeId" gorm:"column:demande_id;not null"`
	SubcategoryId int               `json:"subcategoryId" gorm:"column:subcategory_id;not null"`
	Subcategory   *SubcategoryModel `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryId;references:Id"`

	DepartmentId *int             `json:"departmentId" gorm:"column:department_id"`
	Department   *DepartmentModel `json:"department,omitempty" gorm:"foreignKey:DepartmentId;references:Id"`
	LocationId   *int             `json:"locationId" gorm:"column:location_id"`
	Location     *LocationModel   `json:"location,omitempty" gorm:"foreignKey:LocationId;references:Id"`
	EmployeeId   *int             `json:"employeeId" gorm:"column:employee_id"`
	Employee     *EmployeeModel   `json:"employee,omitempty" gorm:"foreignKey:EmployeeId;references:Id"`

	Description *string `json:"description" gorm:"type:text"`
}
