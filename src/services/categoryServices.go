package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetAllCategories retrieves all Category records with their subcategories
func (s *CategoryService) GetAllCategories() ([]models.CategoryModel, error) {
	var categories []models.CategoryModel
	result := s.db.
		Preload("Subcategories").
		Order("name ASC").
		Find(&categories)
	return categories, result.Error
}

// GetCategoriesByType retrieves active categories of one domain kind
func (s *CategoryService) GetCategoriesByType(assetType models.AssetType) ([]models.CategoryModel, error) {
	var categories []models.CategoryModel
	result := s.db.
		Where("type = ? AND active = ?", assetType, true).
		Preload("Subcategories").
		Order("name ASC").
		Find(&categories)
	return categories, result.Error
}

// CreateCategory creates a new Category record
func (s *CategoryService) CreateCategory(category *models.CategoryModel) (*models.CategoryModel, error) {
	switch category.Type {
	case models.TypeInformatique, models.TypeVehicule, models.TypeMobilier:
	default:
		return nil, apperrors.NewValidationError("type de catégorie inconnu: %s", category.Type)
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create category")
	}
	return category, nil
}

// UpdateCategory updates an existing Category record
func (s *CategoryService) UpdateCategory(id int, updated *models.CategoryModel) (*models.CategoryModel, error) {
	var category models.CategoryModel
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category", id)
		}
		return nil, err
	}
	updated.Id = id
	if err := s.db.Model(&category).Updates(updated).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeactivateCategory soft-disables a category. Categories referenced by
// subcategories are never hard-deleted.
func (s *CategoryService) DeactivateCategory(id int) error {
	result := s.db.Model(&models.CategoryModel{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category", id)
	}
	return nil
}

// DeleteCategory removes a category that owns no subcategories
func (s *CategoryService) DeleteCategory(id int) error {
	var count int64
	if err := s.db.Model(&models.SubcategoryModel{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewValidationError("la catégorie est référencée par %d sous-catégorie(s); désactivez-la plutôt", count)
	}
	return s.db.Delete(&models.CategoryModel{}, id).Error
}

// GetSubcategoriesByCategory retrieves the subcategories of one category with
// their custom field definitions ordered by sequence
func (s *CategoryService) GetSubcategoriesByCategory(categoryID int) ([]models.SubcategoryModel, error) {
	var subcategories []models.SubcategoryModel
	result := s.db.
		Where("category_id = ?", categoryID).
		Preload("Category").
		Preload("CustomFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Order("name ASC").
		Find(&subcategories)
	return subcategories, result.Error
}

// GetSubcategoryByID retrieves one subcategory with its category and fields
func (s *CategoryService) GetSubcategoryByID(id int) (*models.SubcategoryModel, error) {
	var subcategory models.SubcategoryModel
	err := s.db.
		Preload("Category").
		Preload("CustomFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		First(&subcategory, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subcategory", id)
		}
		return nil, err
	}
	return &subcategory, nil
}

// CreateSubcategory creates a new Subcategory record
func (s *CategoryService) CreateSubcategory(subcategory *models.SubcategoryModel) (*models.SubcategoryModel, error) {
	var category models.CategoryModel
	if err := s.db.First(&category, subcategory.CategoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("la catégorie parente %d n'existe pas", subcategory.CategoryId)
		}
		return nil, err
	}
	if err := s.db.Create(subcategory).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create subcategory")
	}
	return subcategory, nil
}

// CreateCustomField adds a dynamic field definition to a subcategory
func (s *CategoryService) CreateCustomField(field *models.CustomFieldModel) (*models.CustomFieldModel, error) {
	switch field.FieldType {
	case models.FieldText, models.FieldInteger, models.FieldFloat,
		models.FieldBoolean, models.FieldDate, models.FieldSelection:
	default:
		return nil, apperrors.NewValidationError("type de champ inconnu: %s", field.FieldType)
	}
	if field.FieldType == models.FieldSelection && len(field.SelectionOptions()) == 0 {
		return nil, apperrors.NewValidationError("un champ de type sélection doit définir ses valeurs")
	}
	if err := s.db.Create(field).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create custom field")
	}
	return field, nil
}

// DeleteCustomField removes a field definition
func (s *CategoryService) DeleteCustomField(id int) error {
	result := s.db.Delete(&models.CustomFieldModel{}, id)
	return result.Error
}

// ValidateCustomValues checks submitted custom values against the
// subcategory's field definitions: required fields must be present, every
// value must match its declared kind, selection values must be one of the
// allowed options, and keys without a definition are rejected.
func (s *CategoryService) ValidateCustomValues(subcategoryID int, values map[string]interface{}) error {
	return validateCustomValues(s.db, subcategoryID, values)
}

func validateCustomValues(tx *gorm.DB, subcategoryID int, values map[string]interface{}) error {
	var fields []models.CustomFieldModel
	if err := tx.Where("subcategory_id = ?", subcategoryID).Find(&fields).Error; err != nil {
		return err
	}

	known := make(map[string]*models.CustomFieldModel, len(fields))
	for i := range fields {
		known[fields[i].TechnicalName] = &fields[i]
	}

	for key := range values {
		if _, ok := known[key]; !ok {
			return apperrors.NewValidationError("champ personnalisé inconnu: %s", key)
		}
	}

	for i := range fields {
		field := &fields[i]
		value, present := values[field.TechnicalName]
		if !present || value == nil || value == "" {
			if field.Required {
				return apperrors.NewValidationError("le champ '%s' est obligatoire", field.Name)
			}
			continue
		}
		if err := checkCustomValue(field, value); err != nil {
			return err
		}
	}
	return nil
}

func checkCustomValue(field *models.CustomFieldModel, value interface{}) error {
	switch field.FieldType {
	case models.FieldText:
		if _, ok := value.(string); !ok {
			return badCustomValue(field, value)
		}
	case models.FieldInteger:
		switch v := value.(type) {
		case float64:
			if v != math.Trunc(v) {
				return badCustomValue(field, value)
			}
		case string:
			if _, err := strconv.Atoi(v); err != nil {
				return badCustomValue(field, value)
			}
		default:
			return badCustomValue(field, value)
		}
	case models.FieldFloat:
		switch v := value.(type) {
		case float64:
			// any JSON number is acceptable
		case string:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return badCustomValue(field, value)
			}
		default:
			return badCustomValue(field, value)
		}
	case models.FieldBoolean:
		switch v := value.(type) {
		case bool:
			// ok as-is
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return badCustomValue(field, value)
			}
		default:
			return badCustomValue(field, value)
		}
	case models.FieldDate:
		str, ok := value.(string)
		if !ok {
			return badCustomValue(field, value)
		}
		if _, err := time.Parse("2006-01-02", str); err != nil {
			return badCustomValue(field, value)
		}
	case models.FieldSelection:
		str, ok := value.(string)
		if !ok {
			return badCustomValue(field, value)
		}
		for _, opt := range field.SelectionOptions() {
			if opt == str {
				return nil
			}
		}
		return apperrors.NewValidationError("valeur '%s' hors des options du champ '%s'", str, field.Name)
	}
	return nil
}

func badCustomValue(field *models.CustomFieldModel, value interface{}) error {
	return apperrors.NewValidationError(
		"valeur invalide pour le champ '%s' (%s): %s",
		field.Name, field.FieldType, fmt.Sprintf("%v", value))
}
