package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/dtos"
	"github.com/MTND/Patrimoine-Backend/src/models"
)

func TestCreateAssetGeneratesCodeAndFicheEntry(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	asset, err := service.CreateAsset(&dtos.CreateAssetDTO{
		Name:          "Laptop Dell",
		SubcategoryId: subcategory.Id,
	}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	wantCode := fmt.Sprintf("%s-ORG-0001", time.Now().Format("2006-01-02"))
	if asset.Code != wantCode {
		t.Errorf("Code = %q, want %q", asset.Code, wantCode)
	}
	if asset.FullCode != asset.Code {
		t.Errorf("FullCode = %q, want initial code %q while custody is empty", asset.FullCode, asset.Code)
	}
	if asset.Status != models.StatusStock {
		t.Errorf("Status = %q, want stock", asset.Status)
	}
	if asset.Type != models.TypeInformatique {
		t.Errorf("Type = %q, want informatique", asset.Type)
	}
	if !asset.Active {
		t.Error("new asset should be active")
	}

	entries := ficheEntries(t, db, asset.ID)
	if len(entries) != 1 {
		t.Fatalf("fiche de vie entries = %d, want 1", len(entries))
	}
	if entries[0].Action != models.ActionCreation {
		t.Errorf("fiche action = %q, want creation", entries[0].Action)
	}
	if entries[0].AssetCode != asset.Code {
		t.Errorf("fiche asset code = %q, want %q", entries[0].AssetCode, asset.Code)
	}
	if entries[0].UtilisateurName != actor.Name {
		t.Errorf("fiche user name = %q, want %q", entries[0].UtilisateurName, actor.Name)
	}
}

func TestCreateAssetSequenceAdvances(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeMobilier, "BUR")

	first, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "Bureau A", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	second, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "Bureau B", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if !strings.HasSuffix(first.Code, "ORG-0001") || !strings.HasSuffix(second.Code, "ORG-0002") {
		t.Errorf("codes %q / %q do not advance the ORG counter", first.Code, second.Code)
	}
}

func TestCreateAssetUnknownSubcategory(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)

	_, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "Fantôme", SubcategoryId: 999}, actor.Id)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCreateAssetSpecializationMismatch(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "SRV")

	_, err := service.CreateAsset(&dtos.CreateAssetDTO{
		Name:          "Serveur",
		SubcategoryId: subcategory.Id,
		Vehicule:      &models.AssetVehiculeModel{},
	}, actor.Id)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for mismatched detail block", err)
	}

	var count int64
	db.Model(&models.AssetModel{}).Count(&count)
	if count != 0 {
		t.Errorf("asset count = %d, want 0 after rolled back creation", count)
	}
}

func TestCreateAssetPersistsSpecialization(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	serial := "SN-42"
	asset, err := service.CreateAsset(&dtos.CreateAssetDTO{
		Name:          "Laptop",
		SubcategoryId: subcategory.Id,
		Informatique:  &models.AssetInformatiqueModel{NumeroSerie: &serial},
	}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if asset.Informatique == nil {
		t.Fatal("Informatique detail not loaded")
	}
	if asset.Informatique.NumeroSerie == nil || *asset.Informatique.NumeroSerie != serial {
		t.Errorf("NumeroSerie not persisted")
	}
}

func TestCreateAssetValidatesCustomValues(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	options := "8 Go\n16 Go"
	field := models.CustomFieldModel{
		SubcategoryId: subcategory.Id,
		Name:          "Mémoire",
		TechnicalName: "memoire",
		FieldType:     models.FieldSelection,
		SelectionValues: &options,
		Required:      true,
	}
	if err := db.Create(&field).Error; err != nil {
		t.Fatalf("seed field: %v", err)
	}

	// Required field missing
	_, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "L1", SubcategoryId: subcategory.Id}, actor.Id)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for missing required field", err)
	}

	// Value outside the selection options
	_, err = service.CreateAsset(&dtos.CreateAssetDTO{
		Name:          "L2",
		SubcategoryId: subcategory.Id,
		CustomValues:  map[string]interface{}{"memoire": "32 Go"},
	}, actor.Id)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for out-of-options value", err)
	}

	// Unknown key
	_, err = service.CreateAsset(&dtos.CreateAssetDTO{
		Name:          "L3",
		SubcategoryId: subcategory.Id,
		CustomValues:  map[string]interface{}{"memoire": "8 Go", "inconnu": "x"},
	}, actor.Id)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for unknown key", err)
	}

	// Valid payload
	asset, err := service.CreateAsset(&dtos.CreateAssetDTO{
		Name:          "L4",
		SubcategoryId: subcategory.Id,
		CustomValues:  map[string]interface{}{"memoire": "16 Go"},
	}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if !strings.Contains(string(asset.CustomValues), "16 Go") {
		t.Errorf("custom values %s do not carry the stored value", asset.CustomValues)
	}
}

func TestUpdateCustodyRecomputesFullCode(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")
	department := seedDepartment(t, db, "DSI")
	location := seedLocation(t, db, "Bâtiment A")

	asset, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "Laptop", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	updated, err := service.UpdateCustody(asset.ID, &dtos.UpdateCustodyDTO{
		DepartmentId: &department.Id,
		LocationId:   &location.Id,
	})
	if err != nil {
		t.Fatalf("UpdateCustody: %v", err)
	}
	want := fmt.Sprintf("%s-DSI/Bâtiment A/%s", asset.Code, models.PlaceholderEmployee)
	if updated.FullCode != want {
		t.Errorf("FullCode = %q, want %q", updated.FullCode, want)
	}

	// Direct custody edits leave the life sheet alone
	if entries := ficheEntries(t, db, asset.ID); len(entries) != 1 {
		t.Errorf("fiche entries = %d, want only the creation entry", len(entries))
	}

	// Clearing everything falls back to the initial code
	cleared, err := service.UpdateCustody(asset.ID, &dtos.UpdateCustodyDTO{})
	if err != nil {
		t.Fatalf("UpdateCustody: %v", err)
	}
	if cleared.FullCode != asset.Code {
		t.Errorf("FullCode = %q, want %q after custody cleared", cleared.FullCode, asset.Code)
	}
}

func TestUpdateAssetCanZeroAcquisitionValue(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	initial := 1200.50
	asset, err := service.CreateAsset(&dtos.CreateAssetDTO{
		Name:              "Laptop",
		SubcategoryId:     subcategory.Id,
		ValeurAcquisition: &initial,
	}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if asset.ValeurAcquisition != initial {
		t.Fatalf("ValeurAcquisition = %v, want %v", asset.ValeurAcquisition, initial)
	}

	zero := 0.0
	updated, err := service.UpdateAsset(asset.ID, &dtos.CreateAssetDTO{ValeurAcquisition: &zero})
	if err != nil {
		t.Fatalf("UpdateAsset: %v", err)
	}
	if updated.ValeurAcquisition != 0 {
		t.Errorf("ValeurAcquisition = %v, want 0", updated.ValeurAcquisition)
	}
	if updated.Name != "Laptop" {
		t.Errorf("Name = %q, want unchanged", updated.Name)
	}
}

func TestDeactivateRemovesFromListing(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeMobilier, "CHA")

	asset, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "Chaise", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if err := service.Deactivate(asset.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	reloaded := reloadAsset(t, db, asset.ID)
	if reloaded.Active {
		t.Error("asset still active")
	}
	if reloaded.Status != models.StatusHS {
		t.Errorf("Status = %q, want hs", reloaded.Status)
	}

	listed, err := service.GetAllAssets()
	if err != nil {
		t.Fatalf("GetAllAssets: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listing returned %d assets, want 0", len(listed))
	}
}

func TestStatsCountsByStatusAndType(t *testing.T) {
	db := testDB(t)
	service := NewAssetService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	info := seedSubcategory(t, db, models.TypeInformatique, "PORT")
	mob := seedSubcategory(t, db, models.TypeMobilier, "BUR")

	for _, name := range []string{"L1", "L2"} {
		if _, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: name, SubcategoryId: info.Id}, actor.Id); err != nil {
			t.Fatalf("CreateAsset: %v", err)
		}
	}
	if _, err := service.CreateAsset(&dtos.CreateAssetDTO{Name: "B1", SubcategoryId: mob.Id}, actor.Id); err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	stats, err := service.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.ByStatus[models.StatusStock] != 3 {
		t.Errorf("stock count = %d, want 3", stats.ByStatus[models.StatusStock])
	}
	if stats.ByType[models.TypeInformatique] != 2 {
		t.Errorf("informatique count = %d, want 2", stats.ByType[models.TypeInformatique])
	}
}
