package models

// Reference directory: departments, employees, locations and suppliers are
// read-only lookup data for the asset lifecycle. Employees additionally carry
// the direct-superior link used for declaration manager derivation.

type DepartmentModel struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}

type EmployeeModel struct {
	Id           int              `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string           `json:"name" gorm:"type:varchar(100);not null"`
	UserId       *int             `json:"userId" gorm:"column:user_id"`
	User         *UserModel       `json:"user,omitempty" gorm:"foreignKey:UserId;references:Id"`
	DepartmentId *int             `json:"departmentId" gorm:"column:department_id"`
	Department   *DepartmentModel `json:"department,omitempty" gorm:"foreignKey:DepartmentId;references:Id"`
	ManagerId    *int             `json:"managerId" gorm:"column:manager_id"`
	Manager      *EmployeeModel   `json:"manager,omitempty" gorm:"foreignKey:ManagerId;references:Id"`
}

// The employees table is joined by name in the declaration unread-count
// queries; pin it so the SQL does not depend on gorm's pluralization.
func (EmployeeModel) TableName() string {
	return "employees"
}

type LocationModel struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}

type SupplierModel struct {
	Id      int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string  `json:"name" gorm:"type:varchar(100);not null"`
	Email   *string `json:"email" gorm:"type:varchar(100)"`
	Phone   *string `json:"phone" gorm:"type:varchar(20)"`
	Address *string `json:"address" gorm:"type:text"`
}
