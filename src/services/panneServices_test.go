package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/models"
)

func (f *declarationFixture) submittedPanne(t *testing.T) *models.PanneModel {
	t.Helper()
	panne, err := f.pannes.CreatePanne(&models.PanneModel{
		AssetId:       f.asset.ID,
		Description:   "Écran cassé",
		DeclarerParId: f.declarer.Id,
	})
	require.NoError(t, err)
	submitted, err := f.pannes.Submit(panne.Id)
	require.NoError(t, err)
	return submitted
}

func TestPanneApprovalLeavesAssetInService(t *testing.T) {
	f := declarationSetup(t)
	panne := f.submittedPanne(t)
	require.Equal(t, "PNN-0001", panne.Name)

	panne, err := f.pannes.ManagerApprove(panne.Id, f.manager.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationManagerApproved, panne.State)

	panne, err = f.pannes.Approve(panne.Id, f.admin.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationApproved, panne.State)

	// Unlike a loss, an approved breakdown keeps the asset active
	asset := reloadAsset(t, f.db, f.asset.ID)
	require.True(t, asset.Active)
	require.Equal(t, models.StatusStock, asset.Status)

	entries := ficheEntries(t, f.db, f.asset.ID)
	require.Len(t, entries, 2)
	require.Equal(t, models.ActionAutre, entries[1].Action)
	require.Contains(t, entries[1].Description, "Panne approuvée")
}

func TestPanneManagerApproveAccessControl(t *testing.T) {
	f := declarationSetup(t)
	panne := f.submittedPanne(t)

	_, err := f.pannes.ManagerApprove(panne.Id, f.outsider.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, want access error", err)

	_, err = f.pannes.ManagerApprove(panne.Id, f.declarer.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, declarer cannot self-approve", err)
}

func TestPanneRejectByManager(t *testing.T) {
	f := declarationSetup(t)
	panne := f.submittedPanne(t)

	rejected, err := f.pannes.Reject(panne.Id, f.manager.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationRejected, rejected.State)
	require.NotNil(t, rejected.ValideParId)
	require.Equal(t, f.manager.Id, *rejected.ValideParId)

	// Outsider cannot reject, admin can
	panne = f.submittedPanne(t)
	_, err = f.pannes.Reject(panne.Id, f.outsider.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, want access error", err)
	rejected, err = f.pannes.Reject(panne.Id, f.admin.Id)
	require.NoError(t, err)
	require.Equal(t, models.DeclarationRejected, rejected.State)
}

func TestPanneUnreadCount(t *testing.T) {
	f := declarationSetup(t)
	panne := f.submittedPanne(t)

	count, err := f.pannes.UnreadCountForUser(f.manager.Id)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, f.pannes.MarkViewed(panne.Id, f.manager.Id))
	count, err = f.pannes.UnreadCountForUser(f.manager.Id)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestCreatePanneWithoutManager(t *testing.T) {
	f := declarationSetup(t)

	// The outsider's employee record has no superior: the declaration is
	// created with no manager and manager approval is impossible.
	panne, err := f.pannes.CreatePanne(&models.PanneModel{
		AssetId:       f.asset.ID,
		Description:   "Clavier bloqué",
		DeclarerParId: f.outsider.Id,
	})
	require.NoError(t, err)
	require.Nil(t, panne.ManagerId)

	panne, err = f.pannes.Submit(panne.Id)
	require.NoError(t, err)

	_, err = f.pannes.ManagerApprove(panne.Id, f.outsider.Id)
	require.True(t, apperrors.IsAccess(err), "err = %v, want access error without computed manager", err)
}
