package services

import (
	"testing"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/dtos"
	"github.com/MTND/Patrimoine-Backend/src/models"
)

func TestMaintenanceCompleteTracesLifeSheet(t *testing.T) {
	db := testDB(t)
	service := NewMaintenanceService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeVehicule, "VS")

	asset, err := NewAssetService(db).CreateAsset(&dtos.CreateAssetDTO{Name: "Clio", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	maintenance, err := service.CreateMaintenance(&models.MaintenanceModel{
		AssetId:          asset.ID,
		Kind:             models.MaintenancePreventif,
		DateIntervention: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if maintenance.State != models.MaintenancePlanifie {
		t.Errorf("State = %q, want planifie", maintenance.State)
	}

	completed, err := service.Complete(maintenance.Id, actor.Id)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if completed.State != models.MaintenanceEffectue {
		t.Errorf("State = %q, want effectue", completed.State)
	}

	entries := ficheEntries(t, db, asset.ID)
	if len(entries) != 2 || entries[1].Action != models.ActionReparation {
		t.Error("maintenance completion not traced on the life sheet")
	}

	if _, err := service.Complete(maintenance.Id, actor.Id); !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error completing twice", err)
	}
}

func TestCreateMaintenanceUnknownAsset(t *testing.T) {
	db := testDB(t)
	service := NewMaintenanceService(db)

	_, err := service.CreateMaintenance(&models.MaintenanceModel{AssetId: 42, DateIntervention: time.Now()})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found error", err)
	}
}
