package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/MTND/Patrimoine-Backend/src/apperrors"
	"github.com/MTND/Patrimoine-Backend/src/middleware"
	"github.com/MTND/Patrimoine-Backend/src/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := testDB(t)
	service := NewUserService(db)

	user, err := service.CreateUser(&models.UserModel{Username: "agent1", Password: "secret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != models.RoleAgent {
		t.Errorf("Role = %q, want default agent", user.Role)
	}
	if user.Password == "secret" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := testDB(t)
	service := NewUserService(db)

	_, err := service.CreateUser(&models.UserModel{Username: "x", Password: "x", Role: "super"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestHasRole(t *testing.T) {
	db := testDB(t)
	service := NewUserService(db)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	agent := seedUser(t, db, "agent", models.RoleAgent)

	ok, err := service.HasRole(admin.Id, models.RoleManager)
	if err != nil || !ok {
		t.Errorf("HasRole(admin, manager) = (%v, %v), want true", ok, err)
	}
	ok, err = service.HasRole(agent.Id, models.RoleManager)
	if err != nil || ok {
		t.Errorf("HasRole(agent, manager) = (%v, %v), want false", ok, err)
	}
	ok, err = service.HasRole(999, models.RoleAgent)
	if err != nil || ok {
		t.Errorf("HasRole(unknown, agent) = (%v, %v), want false without error", ok, err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	db := testDB(t)
	service := NewUserService(db)
	middleware.SetSecretKey("test-secret")

	if _, err := service.CreateUser(&models.UserModel{Username: "agent1", Password: "secret"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	token, err := service.AuthenticateUser("agent1", "secret")
	if err != nil {
		t.Fatalf("AuthenticateUser: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}

	if _, err := service.AuthenticateUser("agent1", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := service.AuthenticateUser("ghost", "secret"); err == nil {
		t.Error("unknown user accepted")
	}
}
