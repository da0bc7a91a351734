package seed

import (
	"os"

	"github.com/MTND/Patrimoine-Backend/src/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed fills the database with the records the application needs on
// first boot. Every block is idempotent and safe to re-run.
func Seed(db *gorm.DB) {
	// Admin user
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Info("User 'admin' already exists")
	} else {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin"
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "admin",
			Password: string(hashedPassword),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Errorf("Failed to create user 'admin': %v", err)
		} else {
			log.Info("User 'admin' created")
		}
	}

	// Code sequences
	orgPrefix := os.Getenv("ORG_CODE_PREFIX")
	if orgPrefix == "" {
		orgPrefix = "ORG"
	}
	sequences := []models.SequenceModel{
		{Code: models.SeqAssetCode, Prefix: orgPrefix, Padding: 4, NextNumber: 1},
		{Code: models.SeqMovementCode, Prefix: "MVT", Padding: 4, NextNumber: 1},
		{Code: models.SeqPerteCode, Prefix: "PRT", Padding: 4, NextNumber: 1},
		{Code: models.SeqPanneCode, Prefix: "PNN", Padding: 4, NextNumber: 1},
		{Code: models.SeqDemandeCode, Prefix: "DEM", Padding: 4, NextNumber: 1},
	}
	for _, sequence := range sequences {
		var existing models.SequenceModel
		if err := db.Where("code = ?", sequence.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&sequence).Error; err != nil {
			log.Errorf("Failed to create sequence %s: %v", sequence.Code, err)
		} else {
			log.Infof("Sequence %s created", sequence.Code)
		}
	}

	// Base taxonomy
	type seedSubcategory struct {
		name string
		code string
	}
	categories := []struct {
		category      models.CategoryModel
		subcategories []seedSubcategory
	}{
		{
			category: models.CategoryModel{Name: "Matériel informatique", Code: "INFO", Type: models.TypeInformatique, Active: true},
			subcategories: []seedSubcategory{
				{"Ordinateur portable", "INFO-PORT"},
				{"Ordinateur de bureau", "INFO-DESK"},
				{"Imprimante", "INFO-IMPR"},
				{"Serveur", "INFO-SRV"},
			},
		},
		{
			category: models.CategoryModel{Name: "Parc automobile", Code: "AUTO", Type: models.TypeVehicule, Active: true},
			subcategories: []seedSubcategory{
				{"Voiture de service", "AUTO-VS"},
				{"Utilitaire", "AUTO-UTIL"},
			},
		},
		{
			category: models.CategoryModel{Name: "Mobilier de bureau", Code: "MOB", Type: models.TypeMobilier, Active: true},
			subcategories: []seedSubcategory{
				{"Bureau", "MOB-BUR"},
				{"Chaise", "MOB-CHA"},
				{"Armoire", "MOB-ARM"},
			},
		},
	}
	for _, entry := range categories {
		var existing models.CategoryModel
		if err := db.Where("code = ?", entry.category.Code).First(&existing).Error; err == nil {
			continue
		}
		category := entry.category
		if err := db.Create(&category).Error; err != nil {
			log.Errorf("Failed to create category %s: %v", category.Code, err)
			continue
		}
		log.Infof("Category %s created", category.Code)
		for _, sub := range entry.subcategories {
			subcategory := models.SubcategoryModel{Name: sub.name, Code: sub.code, CategoryId: category.Id}
			if err := db.Create(&subcategory).Error; err != nil {
				log.Errorf("Failed to create subcategory %s: %v", sub.name, err)
			}
		}
	}

	log.Info("Seeding finished")
}
