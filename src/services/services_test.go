package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/MTND/Patrimoine-Backend/src/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Each in-memory sqlite connection is an independent database; the
	// migrated schema only exists on one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.DepartmentModel{},
		&models.EmployeeModel{},
		&models.LocationModel{},
		&models.SupplierModel{},
		&models.CategoryModel{},
		&models.SubcategoryModel{},
		&models.CustomFieldModel{},
		&models.SequenceModel{},
		&models.AssetModel{},
		&models.AssetInformatiqueModel{},
		&models.AssetVehiculeModel{},
		&models.AssetMobilierModel{},
		&models.MovementModel{},
		&models.FicheVieModel{},
		&models.PerteModel{},
		&models.PanneModel{},
		&models.MaterialRequestModel{},
		&models.MaterialRequestLineModel{},
		&models.MaintenanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.UserModel {
	t.Helper()
	user := &models.UserModel{Username: username, Password: "x", Name: username, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedEmployee(t *testing.T, db *gorm.DB, name string, userID *int, managerID *int) *models.EmployeeModel {
	t.Helper()
	employee := &models.EmployeeModel{Name: name, UserId: userID, ManagerId: managerID}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("seed employee %s: %v", name, err)
	}
	return employee
}

func seedDepartment(t *testing.T, db *gorm.DB, name string) *models.DepartmentModel {
	t.Helper()
	department := &models.DepartmentModel{Name: name}
	if err := db.Create(department).Error; err != nil {
		t.Fatalf("seed department %s: %v", name, err)
	}
	return department
}

func seedLocation(t *testing.T, db *gorm.DB, name string) *models.LocationModel {
	t.Helper()
	location := &models.LocationModel{Name: name}
	if err := db.Create(location).Error; err != nil {
		t.Fatalf("seed location %s: %v", name, err)
	}
	return location
}

// seedSubcategory provisions a category of the given type with one
// subcategory under it and returns the subcategory.
func seedSubcategory(t *testing.T, db *gorm.DB, assetType models.AssetType, code string) *models.SubcategoryModel {
	t.Helper()
	category := &models.CategoryModel{Name: "Cat " + code, Code: "CAT-" + code, Type: assetType, Active: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category %s: %v", code, err)
	}
	subcategory := &models.SubcategoryModel{Name: "Sub " + code, Code: code, CategoryId: category.Id}
	if err := db.Create(subcategory).Error; err != nil {
		t.Fatalf("seed subcategory %s: %v", code, err)
	}
	return subcategory
}

func ficheEntries(t *testing.T, db *gorm.DB, assetID int) []models.FicheVieModel {
	t.Helper()
	var entries []models.FicheVieModel
	if err := db.Where("asset_id = ?", assetID).Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("load fiche de vie: %v", err)
	}
	return entries
}

func reloadAsset(t *testing.T, db *gorm.DB, id int) *models.AssetModel {
	t.Helper()
	var asset models.AssetModel
	if err := db.First(&asset, id).Error; err != nil {
		t.Fatalf("reload asset %d: %v", id, err)
	}
	return &asset
}
