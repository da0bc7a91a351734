package models

import "strings"

type AssetType string

const (
	TypeInformatique AssetType = "informatique"
	TypeVehicule     AssetType = "vehicule"
	TypeMobilier     AssetType = "mobilier"
)

type CategoryModel struct {
	Id            int                `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string             `json:"name" gorm:"type:varchar(100);not null"`
	Code          string             `json:"code" gorm:"type:varchar(50);unique;not null"`
	Type          AssetType          `json:"type" gorm:"type:varchar(20);not null"`
	Icon          *string            `json:"icon" gorm:"type:varchar(100)"`
	Active        bool               `json:"active" gorm:"type:boolean;default:true;not null"`
	Subcategories []SubcategoryModel `json:"subcategories,omitempty" gorm:"foreignKey:CategoryId"`
}

type SubcategoryModel struct {
	Id           int                `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string             `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_subcategory_name_category"`
	Code         string             `json:"code" gorm:"type:varchar(50);unique;not null"`
	CategoryId   int                `json:"categoryId" gorm:"column:category_id;not null;uniqueIndex:idx_subcategory_name_category"`
	Category     *CategoryModel     `json:"category,omitempty" gorm:"foreignKey:CategoryId;references:Id"`
	Image        *string            `json:"image" gorm:"type:varchar(255)"`
	CustomFields []CustomFieldModel `json:"customFields,omitempty" gorm:"foreignKey:SubcategoryId"`
}

type CustomFieldType string

const (
	FieldText      CustomFieldType = "text"
	FieldInteger   CustomFieldType = "integer"
	FieldFloat     CustomFieldType = "float"
	FieldBoolean   CustomFieldType = "boolean"
	FieldDate      CustomFieldType = "date"
	FieldSelection CustomFieldType = "selection"
)

// CustomFieldModel describes one dynamic field of a subcategory. Values for
// these fields live in AssetModel.CustomValues keyed by TechnicalName.
type CustomFieldModel struct {
	Id              int              `json:"id" gorm:"primaryKey;autoIncrement"`
	SubcategoryId   int              `json:"subcategoryId" gorm:"column:subcategory_id;not null;uniqueIndex:idx_custom_field_name_subcategory"`
	Name            string           `json:"name" gorm:"type:varchar(100);not null"`
	TechnicalName   string           `json:"technicalName" gorm:"column:technical_name;type:varchar(100);not null;uniqueIndex:idx_custom_field_name_subcategory"`
	FieldType       CustomFieldType  `json:"type" gorm:"column:field_type;type:varchar(20);not null"`
	SelectionValues *string          `json:"selectionValues" gorm:"column:selection_values;type:text"`
	Required        bool             `json:"required" gorm:"type:boolean;default:false;not null"`
	Sequence        int              `json:"sequence" gorm:"type:int;default:0;not null"`
	Subcategory     *SubcategoryModel `json:"-" gorm:"foreignKey:SubcategoryId;references:Id"`
}

// SelectionOptions splits SelectionValues on newlines or commas, trimming
// blanks. Only meaningful for selection fields.
func (f *CustomFieldModel) SelectionOptions() []string {
	if f.SelectionValues == nil {
		return nil
	}
	raw := strings.FieldsFunc(*f.SelectionValues, func(r rune) bool {
		return r == '\n' || r == ','
	})
	options := make([]string, 0, len(raw))
	for _, opt := range raw {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}
