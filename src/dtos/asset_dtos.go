package dtos

import (
	"time"

	"github.com/MTND/Patrimoine-Backend/src/models"
)

// CreateAssetDTO is the payload accepted by asset creation: base fields plus
// the optional type-specialization record matching the subcategory's type and
// the dynamic custom values keyed by technical name.
type CreateAssetDTO struct {
	Name              string     `json:"name" binding:"required"`
	SubcategoryId     int        `json:"subcategoryId" binding:"required"`
	DateAcquisition   *time.Time `json:"dateAcquisition"`
	ValeurAcquisition *float64   `json:"valeurAcquisition"`

	DepartmentId *int `json:"departmentId"`
	EmployeeId   *int `json:"employeeId"`
	LocationId   *int `json:"locationId"`
	SupplierId   *int `json:"supplierId"`

	CustomValues map[string]interface{} `json:"customValues"`

	Informatique *models.AssetInformatiqueModel `json:"informatique"`
	Vehicule     *models.AssetVehiculeModel     `json:"vehicule"`
	Mobilier     *models.AssetMobilierModel     `json:"mobilier"`

	Image                *string `json:"image"`
	FactureFile          *string `json:"factureFile"`
	FactureFilename      *string `json:"factureFilename"`
	BonLivraisonFile     *string `json:"bonLivraisonFile"`
	BonLivraisonFilename *string `json:"bonLivraisonFilename"`
}

// UpdateCustodyDTO carries the new custody trio for a direct custody edit.
// Nil means the dimension becomes unset.
type UpdateCustodyDTO struct {
	DepartmentId *int `json:"departmentId"`
	EmployeeId   *int `json:"employeeId"`
	LocationId   *int `json:"locationId"`
}
