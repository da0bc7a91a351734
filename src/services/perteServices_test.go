package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/dtos"
	"github.com/MTND/Patrimoine-Backend/src/models"
)

type declarationFixture struct {
	db       *gorm.DB
	pertes   *PerteService
	pannes   *PanneService
	asset    *models.AssetModel
	declarer *models.UserModel
	manager  *models.UserModel
	admin    *models.UserModel
	outsider *models.UserModel
}

// declarationSetup builds a declarer whose employee record reports to the
// manager's employee record, plus an admin and an unrelated user.
func declarationSetup(t *testing.T) *declarationFixture {
	t.Helper()
	db := testDB(t)
	users := NewUserService(db)

	declarer := seedUser(t, db, "agent", models.RoleAgent)
	manager := seedUser(t, db, "chef", models.RoleManager)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	outsider := seedUser(t, db, "tiers", models.RoleAgent)

	managerEmployee := seedEmployee(t, db, "Chef Service", &manager.Id, nil)
	seedEmployee(t, db, "Agent Terrain", &declarer.Id, &managerEmployee.Id)
	seedEmployee(t, db, "Tiers", &outsider.Id, nil)

	subcategory := seedSubcategory(t, db, models.TypeInformatique, "PORT")
	asset, err := NewAssetService(db).CreateAsset(&dtos.CreateAssetDTO{
		Name:          "Laptop",
		SubcategoryId: subcategory.Id,
	}, declarer.Id)
	require.NoError(t, err)

	return &declarationFixture{
		db:       db,
		pertes:   NewPerteService(db, users),
		pannes:   NewPanneService(db, users),
		asset:    asset,
		declarer: declarer,
		manager:  manager,
		admin:    admin,
		outsider: outsider,
	}
}

func (f *declarationFixture) submittedPerte(t *testing.T) *models.PerteModel {
	t.Helper()
	perte, err := f.pertes.CreatePerte(&models.PerteModel{
		AssetId:       f.asset.ID,
		Motif:         "Perdu en déplacement",
		DeclarerParId: f.declarer.Id,
	})
	require.NoError(t, err)
	submitted, err := f.pertes.Submit(perte.Id)
	require.NoError(t, err)
	return submitted
}

func TestPerteFullApprovalChain(t *testing.T) {
	f := declarationSetup(t)

	perte, err := f.pertes.CreatePerte(&models.PerteModel{
		AssetId:       f.asset.ID,
		Motif:         "Perdu en déplacement",
		DeclarerParId: f.declarer.Id,
	})
	require.NoError(t, err)
	require.Equal(t, models.DeclarationDraft, perte.State)
	require.Equal(t, "PRT-0001", perte.Name)
	require.NotNil(t, perte.ManagerId, "manager must be derived from the declarer's superior")

	perte, err = f.pertes.Submit(perte.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationToApprove, perte.State)

	perte, err = f.pertes.ManagerApprove(perte.Id, f.manager.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationManagerApproved, perte.State)

	perte, err = f.pertes.Approve(perte.Id, f.admin.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationApproved, perte.State)
	require.NotNil(t, perte.ValideParId)
	require.Equal(t, f.admin.Id, *perte.ValideParId)
	require.NotNil(t, perte.DateValidation)

	asset := reloadAsset(t, f.db, f.asset.ID)
	require.False(t, asset.Active, "approved loss must deactivate the asset")
	require.Equal(t, models.StatusHS, asset.Status)

	entries := ficheEntries(t, f.db, f.asset.ID)
	require.Len(t, entries, 2)
	require.Equal(t, models.ActionSortie, entries[1].Action)
}

func TestPerteManagerApproveRequiresComputedManager(t *testing.T) {
	f := declarationSetup(t)
	perte := f.submittedPerte(t)

	_, err := f.pertes.ManagerApprove(perte.Id, f.outsider.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, want access error", err)

	reloaded, err := f.pertes.GetPerteByID(perte.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationToApprove, reloaded.State, "state must not move on refused approval")

	asset := reloadAsset(t, f.db, f.asset.ID)
	require.True(t, asset.Active)
}

func TestPerteApproveRequiresAdmin(t *testing.T) {
	f := declarationSetup(t)
	perte := f.submittedPerte(t)

	_, err := f.pertes.ManagerApprove(perte.Id, f.manager.Id)
	require.NoError(t, err)

	_, err = f.pertes.Approve(perte.Id, f.manager.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, want access error for non-admin", err)

	asset := reloadAsset(t, f.db, f.asset.ID)
	require.True(t, asset.Active)
}

func TestPerteApproveRequiresManagerStep(t *testing.T) {
	f := declarationSetup(t)
	perte := f.submittedPerte(t)

	_, err := f.pertes.Approve(perte.Id, f.admin.Id)
	require.True(t, apperrors.IsValidation(err), "err = %v, admin cannot skip the manager step", err)
}

func TestPerteRejectPaths(t *testing.T) {
	f := declarationSetup(t)

	// Manager rejects at to_approve
	perte := f.submittedPerte(t)
	rejected, err := f.pertes.Reject(perte.Id, f.manager.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationRejected, rejected.State)

	asset := reloadAsset(t, f.db, f.asset.ID)
	require.True(t, asset.Active, "rejection must leave the asset untouched")

	// Outsider cannot reject
	perte = f.submittedPerte(t)
	_, err = f.pertes.Reject(perte.Id, f.outsider.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, want access error", err)

	// Admin may reject directly at to_approve
	direct := f.submittedPerte(t)
	rejected, err = f.pertes.Reject(direct.Id, f.admin.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationRejected, rejected.State)

	// Admin rejects after the manager step
	_, err = f.pertes.ManagerApprove(perte.Id, f.manager.Id)
	require.NoError(t, err)
	rejected, err = f.pertes.Reject(perte.Id, f.admin.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationRejected, rejected.State)

	// A terminal declaration cannot be rejected again
	_, err = f.pertes.Reject(perte.Id, f.admin.Id)
	require.True(t, apperrors.IsValidation(err), "err = %v, want validation error on terminal state", err)
}

func TestPerteSubmitOnlyFromDraft(t *testing.T) {
	f := declarationSetup(t)
	perte := f.submittedPerte(t)

	_, err := f.pertes.Submit(perte.Id)
	require.True(t, apperrors.IsValidation(err), "err = %v, want validation error", err)
}

func TestPerteUnreadCount(t *testing.T) {
	f := declarationSetup(t)
	perte := f.submittedPerte(t)

	count, err := f.pertes.UnreadCountForUser(f.manager.Id)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// Someone else's queue is empty
	count, err = f.pertes.UnreadCountForUser(f.outsider.Id)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	require.NoError(t, f.pertes.MarkViewed(perte.Id, f.manager.Id))
	count, err = f.pertes.UnreadCountForUser(f.manager.Id)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	// Marking twice stays idempotent
	require.NoError(t, f.pertes.MarkViewed(perte.Id, f.manager.Id))
	reloaded, err := f.pertes.GetPerteByID(perte.Id)
	require.NoError(t, err)
	require.Len(t, reloaded.Viewers, 1)
}

func TestCreatePerteRequiresMotifAndAsset(t *testing.T) {
	f := declarationSetup(t)

	_, err := f.pertes.CreatePerte(&models.PerteModel{AssetId: f.asset.ID, DeclarerParId: f.declarer.Id})
	require.True(t, apperrors.IsValidation(err), "err = %v, want validation error without motif", err)

	_, err = f.pertes.CreatePerte(&models.PerteModel{AssetId: 999, Motif: "x", DeclarerParId: f.declarer.Id})
	require.True(t, apperrors.IsNotFound(err), "err = %v, want not-found error", err)
}
