package main

import (
	"os"

	"github.com/MTND/Patrimoine-Backend/src/db"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/models"
	"github.com/MTND/Patrimoine-Backend/src/routes"
	"github.com/MTND/Patrimoine-Backend/src/seed"
	"github.com/MTND/Patrimoine-Backend/src/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Auto-migrate models
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
		log.Fatalf("Error during auto-migration: %v", err)
	}

	// Token secret
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	middleware.SetSecretKey(secret)

	// Base records
	if os.Getenv("SKIP_SEED") == "" {
		seed.Seed(db)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	userService := services.NewUserService(db)
	directoryService := services.NewDirectoryService(db)
	categoryService := services.NewCategoryService(db)
	sequenceService := services.NewSequenceService(db)
	assetService := services.NewAssetService(db)
	movementService := services.NewMovementService(db)
	ficheVieService := services.NewFicheVieService(db)
	perteService := services.NewPerteService(db, userService)
	panneService := services.NewPanneService(db, userService)
	materialRequestService := services.NewMaterialRequestService(db)
	maintenanceService := services.NewMaintenanceService(db)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupDirectoryRoutes(router, directoryService)
	routes.SetupCategoryRoutes(router, categoryService)
	routes.SetupAssetRoutes(router, assetService)
	routes.SetupMovementRoutes(router, movementService)
	routes.SetupFicheVieRoutes(router, ficheVieService)
	routes.SetupPerteRoutes(router, perteService)
	routes.SetupPanneRoutes(router, panneService)
	routes.SetupMaterialRequestRoutes(router, materialRequestService)
	routes.SetupMaintenanceRoutes(router, maintenanceService)
	routes.SetupSequenceRoutes(router, sequenceService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Patrimoine backend is up")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v", host, err)
	}
}
