package services

import (
	"errors"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
	"gorm.io/gorm"
)

// DirectoryService exposes the reference data consumed by the asset lifecycle:
// departments, employees, locations and suppliers, plus the single manager
// derivation point used by the declaration pipelines.
type DirectoryService struct {
	db *gorm.DB
}

// NewDirectoryService creates a new instance of DirectoryService
func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) GetAllDepartments() ([]models.DepartmentModel, error) {
	var departments []models.DepartmentModel
	result := s.db.Order("name ASC").Find(&departments)
	return departments, result.Error
}

func (s *DirectoryService) CreateDepartment(department *models.DepartmentModel) (*models.DepartmentModel, error) {
	if err := s.db.Create(department).Error; err != nil {
		return nil, err
	}
	return department, nil
}

func (s *DirectoryService) GetAllEmployees() ([]models.EmployeeModel, error) {
	var employees []models.EmployeeModel
	result := s.db.
		Preload("Department").
		Preload("Manager").
		Order("name ASC").
		Find(&employees)
	return employees, result.Error
}

func (s *DirectoryService) GetEmployeeByID(id int) (*models.EmployeeModel, error) {
	var employee models.EmployeeModel
	if err := s.db.Preload("Department").Preload("Manager").First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee", id)
		}
		return nil, err
	}
	return &employee, nil
}

func (s *DirectoryService) CreateEmployee(employee *models.EmployeeModel) (*models.EmployeeModel, error) {
	if err := s.db.Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *DirectoryService) GetAllLocations() ([]models.LocationModel, error) {
	var locations []models.LocationModel
	result := s.db.Order("name ASC").Find(&locations)
	return locations, result.Error
}

func (s *DirectoryService) CreateLocation(location *models.LocationModel) (*models.LocationModel, error) {
	if err := s.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

func (s *DirectoryService) GetAllSuppliers() ([]models.SupplierModel, error) {
	var suppliers []models.SupplierModel
	result := s.db.Order("name ASC").Find(&suppliers)
	return suppliers, result.Error
}

func (s *DirectoryService) CreateSupplier(supplier *models.SupplierModel) (*models.SupplierModel, error) {
	if err := s.db.Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// ResolveManager returns the direct superior of the employee linked to the
// given user, or nil when the user has no employee record or no superior.
// Every manager derivation in the declaration pipelines goes through here so
// the creation path and the authorization path cannot diverge.
func (s *DirectoryService) ResolveManager(userID int) (*models.EmployeeModel, error) {
	return resolveManager(s.db, userID)
}

func resolveManager(tx *gorm.DB, userID int) (*models.EmployeeModel, error) {
	var employee models.EmployeeModel
	if err := tx.Preload("Manager").Where("user_id = ?", userID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employee.Manager, nil
}

// employeeForUser returns the employee record linked to the given user, or nil.
func employeeForUser(tx *gorm.DB, userID int) (*models.EmployeeModel, error) {
	var employee models.EmployeeModel
	if err := tx.Where("user_id = ?", userID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}
