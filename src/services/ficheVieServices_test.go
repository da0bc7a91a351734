package services

import (
	"testing"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/dtos"
	"github.com/MTND/Patrimoine-Backend/src/models"
)

func TestFicheVieOrderedNewestFirst(t *testing.T) {
	db := testDB(t)
	service := NewFicheVieService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	asset, err := NewAssetService(db).CreateAsset(&dtos.CreateAssetDTO{Name: "Laptop", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	for _, description := range []string{"première note", "seconde note"} {
		if _, err := service.Append(asset.ID, models.ActionAutre, description, &actor.Id); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := service.GetByAssetID(asset.ID)
	if err != nil {
		t.Fatalf("GetByAssetID: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// Same-instant entries fall back to id desc: latest append comes first
	if entries[0].Description != "seconde note" {
		t.Errorf("first entry = %q, want the latest append", entries[0].Description)
	}
	if entries[2].Action != models.ActionCreation {
		t.Errorf("oldest entry action = %q, want creation", entries[2].Action)
	}
}

func TestFicheVieDenormalizesAssetIdentity(t *testing.T) {
	db := testDB(t)
	service := NewFicheVieService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	asset, err := NewAssetService(db).CreateAsset(&dtos.CreateAssetDTO{Name: "Laptop", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	entry, err := service.Append(asset.ID, models.ActionAutre, "inventaire annuel", &actor.Id)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if entry.AssetName != "Laptop" || entry.AssetCode != asset.Code {
		t.Errorf("entry identity = (%q, %q), want denormalized name and code", entry.AssetName, entry.AssetCode)
	}

	// Renaming the asset later must not rewrite history
	if err := db.Model(&models.AssetModel{}).Where("id = ?", asset.ID).Update("name", "Laptop v2").Error; err != nil {
		t.Fatalf("rename: %v", err)
	}
	entries, err := service.GetByAssetID(asset.ID)
	if err != nil {
		t.Fatalf("GetByAssetID: %v", err)
	}
	for _, e := range entries {
		if e.AssetName != "Laptop" {
			t.Errorf("entry %d name = %q, history must keep the original name", e.Id, e.AssetName)
		}
	}
}

func TestFicheVieAppendReturnsCreatedEntry(t *testing.T) {
	db := testDB(t)
	service := NewFicheVieService(db)
	actor := seedUser(t, db, "gestionnaire", models.RoleAgent)
	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")

	asset, err := NewAssetService(db).CreateAsset(&dtos.CreateAssetDTO{Name: "Laptop", SubcategoryId: subcategory.Id}, actor.Id)
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	first, err := service.Append(asset.ID, models.ActionAutre, "note A", &actor.Id)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	second, err := service.Append(asset.ID, models.ActionAutre, "note B", &actor.Id)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Each call hands back the row it inserted, not the asset's latest entry
	if first.Id == 0 || second.Id == 0 {
		t.Fatal("returned entries must carry their generated ids")
	}
	if first.Description != "note A" || second.Description != "note B" {
		t.Errorf("descriptions = (%q, %q), want each call's own entry", first.Description, second.Description)
	}
	if second.Id <= first.Id {
		t.Errorf("ids = (%d, %d), want increasing", first.Id, second.Id)
	}
}

func TestFicheVieAppendUnknownAsset(t *testing.T) {
	db := testDB(t)
	service := NewFicheVieService(db)

	_, err := service.Append(999, models.ActionAutre, "x", nil)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found error", err)
	}
}
