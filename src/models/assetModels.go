package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type AssetStatus string

const (
	StatusStock       AssetStatus = "stock"
	StatusService     AssetStatus = "service"
	StatusMaintenance AssetStatus = "maintenance"
	StatusHS          AssetStatus = "hs"
	StatusReforme     AssetStatus = "reforme"
)

// Placeholder labels for unset custody dimensions in the full code.
const (
	PlaceholderDepartment = "N/A_DEP"
	PlaceholderLocation   = "N/A_LOC"
	PlaceholderEmployee   = "N/A_EMP"
)

type AssetModel struct {
	ID            int               `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string            `json:"name" gorm:"type:varchar(100);not null"`
	// Code is assigned once at creation from a dated sequence and never changes.
	Code          string            `json:"code" gorm:"type:varchar(100);unique;not null"`
	// FullCode is derived from Code and the current custody; it is rewritten by
	// RecomputeFullCode after every custody change and must never be set by hand.
	FullCode      string            `json:"fullCode" gorm:"column:full_code;type:varchar(255);not null"`
	Type          AssetType         `json:"type" gorm:"type:varchar(20);not null"`
	SubcategoryId int               `json:"subcategoryId" gorm:"column:subcategory_id;not null"`
	Subcategory   *SubcategoryModel `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryId;references:Id"`

	DateAcquisition  *time.Time     `json:"dateAcquisition" gorm:"column:date_acquisition;type:date"`
	ValeurAcquisition float64       `json:"valeurAcquisition" gorm:"column:valeur_acquisition;type:numeric;default:0"`
	CustomValues     datatypes.JSON `json:"customValues" gorm:"column:custom_values"`

	Status AssetStatus `json:"status" gorm:"column:etat;type:varchar(20);default:'stock';not null"`
	Active bool        `json:"active" gorm:"type:boolean;default:true;not null"`

	DepartmentId *int             `json:"departmentId" gorm:"column:department_id"`
	Department   *DepartmentModel `json:"department,omitempty" gorm:"foreignKey:DepartmentId;references:Id"`
	EmployeeId   *int             `json:"employeeId" gorm:"column:employee_id"`
	Employee     *EmployeeModel   `json:"employee,omitempty" gorm:"foreignKey:EmployeeId;references:Id"`
	LocationId   *int             `json:"locationId" gorm:"column:location_id"`
	Location     *LocationModel   `json:"location,omitempty" gorm:"foreignKey:LocationId;references:Id"`
	SupplierId   *int             `json:"supplierId" gorm:"column:supplier_id"`
	Supplier     *SupplierModel   `json:"supplier,omitempty" gorm:"foreignKey:SupplierId;references:Id"`

	Image                *string `json:"image" gorm:"type:varchar(255)"`
	FactureFile          *string `json:"factureFile" gorm:"column:facture_file;type:varchar(255)"`
	FactureFilename      *string `json:"factureFilename" gorm:"column:facture_filename;type:varchar(255)"`
	BonLivraisonFile     *string `json:"bonLivraisonFile" gorm:"column:bon_livraison_file;type:varchar(255)"`
	BonLivraisonFilename *string `json:"bonLivraisonFilename" gorm:"column:bon_livraison_filename;type:varchar(255)"`

	Informatique *AssetInformatiqueModel `json:"informatique,omitempty" gorm:"foreignKey:AssetId"`
	Vehicule     *AssetVehiculeModel     `json:"vehicule,omitempty" gorm:"foreignKey:AssetId"`
	Mobilier     *AssetMobilierModel     `json:"mobilier,omitempty" gorm:"foreignKey:AssetId"`
}

func (AssetModel) TableName() string {
	return "assets"
}

// ComputeFullCode derives the human-readable identifier from the immutable
// initial code and the loaded custody relations. With no custody at all it is
// the initial code; otherwise every unset dimension renders as its placeholder.
// The result depends only on (Code, Department, Location, Employee), never on
// the order the custody fields were written.
func (a *AssetModel) ComputeFullCode() string {
	if a.DepartmentId == nil && a.LocationId == nil && a.EmployeeId == nil {
		return a.Code
	}

	department := PlaceholderDepartment
	if a.Department != nil {
		department = a.Department.Name
	}
	location := PlaceholderLocation
	if a.Location != nil {
		location = a.Location.Name
	}
	employee := PlaceholderEmployee
	if a.Employee != nil {
		employee = a.Employee.Name
	}

	return fmt.Sprintf("%s-%s/%s/%s", a.Code, department, location, employee)
}
