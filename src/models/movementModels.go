package models

import "time"

type MovementKind string

const (
	MovementAffectation  MovementKind = "affectation"
	MovementTransfert    MovementKind = "transfert"
	MovementReparation   MovementKind = "reparation"
	MovementAmortissement MovementKind = "amortissement"
	MovementSortie       MovementKind = "sortie"
	MovementRetourStock  MovementKind = "retour_stock"
	MovementReforme      MovementKind = "reforme"
)

type MovementState string

const (
	MovementDraft     MovementState = "draft"
	MovementValidated MovementState = "valide"
)

// MovementModel is a single custody/status change request against one asset.
// FromLocationId is a snapshot of the asset's location at creation time; the
// destination fields are interpreted per kind on validation.
type MovementModel struct {
	Id       int           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string        `json:"name" gorm:"type:varchar(50);unique;not null"`
	AssetId  int           `json:"assetId" gorm:"column:asset_id;not null"`
	Asset    *AssetModel   `json:"asset,omitempty" gorm:"foreignKey:AssetId;references:ID"`
	Date     time.Time     `json:"date" gorm:"type:date;not null"`
	Kind     MovementKind  `json:"kind" gorm:"column:type_mouvement;type:varchar(20);not null"`
	State    MovementState `json:"state" gorm:"type:varchar(10);default:'draft';not null"`

	FromLocationId *int           `json:"fromLocationId" gorm:"column:from_location_id"`
	FromLocation   *LocationModel `json:"fromLocation,omitempty" gorm:"foreignKey:FromLocationId;references:Id"`
	FromEmployeeId *int           `json:"fromEmployeeId" gorm:"column:from_employee_id"`
	FromEmployee   *EmployeeModel `json:"fromEmployee,omitempty" gorm:"foreignKey:FromEmployeeId;references:Id"`

	ToDepartmentId *int             `json:"toDepartmentId" gorm:"column:to_department_id"`
	ToDepartment   *DepartmentModel `json:"toDepartment,omitempty" gorm:"foreignKey:ToDepartmentId;references:Id"`
	ToEmployeeId   *int             `json:"toEmployeeId" gorm:"column:to_employee_id"`
	ToEmployee     *EmployeeModel   `json:"toEmployee,omitempty" gorm:"foreignKey:ToEmployeeId;references:Id"`
	ToLocationId   *int             `json:"toLocationId" gorm:"column:to_location_id"`
	ToLocation     *LocationModel   `json:"toLocation,omitempty" gorm:"foreignKey:ToLocationId;references:Id"`

	Motif *string `json:"motif" gorm:"type:text"`
}
