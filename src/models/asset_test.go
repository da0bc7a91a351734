package models

import "testing"

func TestComputeFullCodeNoCustody(t *testing.T) {
	asset := AssetModel{Code: "2024-05-01-ORG-0001"}
	if got := asset.ComputeFullCode(); got != asset.Code {
		t.Errorf("ComputeFullCode() = %q, want initial code %q", got, asset.Code)
	}
}

func TestComputeFullCodePlaceholders(t *testing.T) {
	deptID := 1
	asset := AssetModel{
		Code:         "2024-05-01-ORG-0001",
		DepartmentId: &deptID,
		Department:   &DepartmentModel{Id: deptID, Name: "DSI"},
	}
	want := "2024-05-01-ORG-0001-DSI/N/A_LOC/N/A_EMP"
	if got := asset.ComputeFullCode(); got != want {
		t.Errorf("ComputeFullCode() = %q, want %q", got, want)
	}
}

func TestComputeFullCodeAllDimensions(t *testing.T) {
	deptID, locID, empID := 1, 2, 3
	asset := AssetModel{
		Code:         "2024-05-01-ORG-0002",
		DepartmentId: &deptID,
		Department:   &DepartmentModel{Id: deptID, Name: "DSI"},
		LocationId:   &locID,
		Location:     &LocationModel{Id: locID, Name: "Bâtiment A"},
		EmployeeId:   &empID,
		Employee:     &EmployeeModel{Id: empID, Name: "Durand"},
	}
	want := "2024-05-01-ORG-0002-DSI/Bâtiment A/Durand"
	if got := asset.ComputeFullCode(); got != want {
		t.Errorf("ComputeFullCode() = %q, want %q", got, want)
	}
}

func TestSelectionOptions(t *testing.T) {
	values := "8 Go\n16 Go, 32 Go\n"
	field := CustomFieldModel{SelectionValues: &values}
	options := field.SelectionOptions()
	want := []string{"8 Go", "16 Go", "32 Go"}
	if len(options) != len(want) {
		t.Fatalf("options = %v, want %v", options, want)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Errorf("options[%d] = %q, want %q", i, options[i], want[i])
		}
	}

	empty := CustomFieldModel{}
	if opts := empty.SelectionOptions(); opts != nil {
		t.Errorf("SelectionOptions() = %v, want nil without values", opts)
	}
}

func TestUserHasRole(t *testing.T) {
	admin := UserModel{Role: RoleAdmin}
	if !admin.HasRole(RoleManager) {
		t.Error("admin must satisfy every role check")
	}
	agent := UserModel{Role: RoleAgent}
	if agent.HasRole(RoleManager) {
		t.Error("agent must not pass a manager check")
	}
	var nobody *UserModel
	if nobody.HasRole(RoleAgent) {
		t.Error("nil user must fail every role check")
	}
}
