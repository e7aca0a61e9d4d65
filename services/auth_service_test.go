package services

import (
	"testing"

	"medmatch/entity"
	"medmatch/pkg/apperr"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.Auth.Register("Alice", "A@X.com", "secret123", "secret123", entity.RoleDoctor)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Username != "alice" || user.Email != "a@x.com" {
		t.Errorf("username/email not normalized: %q %q", user.Username, user.Email)
	}
	if user.IsVerified {
		t.Error("new user must start unverified")
	}
	if _, err := env.Doctors.FindByUserID(user.ID); err != nil {
		t.Errorf("doctor profile missing after register: %v", err)
	}

	hosp, err := env.Auth.Register("genhosp", "g@x.com", "secret123", "secret123", entity.RoleHospital)
	if err != nil {
		t.Fatalf("register hospital: %v", err)
	}
	if _, err := env.Hospitals.FindByUserID(hosp.ID); err != nil {
		t.Errorf("hospital profile missing after register: %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.Auth.Register("alice", "a@x.com", "secret123", "secret123", entity.RoleDoctor); err != nil {
		t.Fatalf("register: %v", err)
	}

	var usersBefore int64
	env.DB.Model(&entity.User{}).Count(&usersBefore)

	_, err := env.Auth.Register("alice", "other@x.com", "secret123", "secret123", entity.RoleDoctor)
	if !apperr.Is(err, apperr.CodeConflict) {
		t.Errorf("duplicate username: want conflict, got %v", err)
	}

	_, err = env.Auth.Register("bob", "a@x.com", "secret123", "secret123", entity.RoleDoctor)
	if !apperr.Is(err, apperr.CodeConflict) {
		t.Errorf("duplicate email: want conflict, got %v", err)
	}

	var usersAfter int64
	env.DB.Model(&entity.User{}).Count(&usersAfter)
	if usersAfter != usersBefore {
		t.Errorf("failed registrations created rows: before=%d after=%d", usersBefore, usersAfter)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name                                string
		username, email, pass, confirm, role string
	}{
		{"admin role", "eve", "e@x.com", "secret123", "secret123", entity.RoleAdmin},
		{"unknown role", "eve", "e@x.com", "secret123", "secret123", "nurse"},
		{"password mismatch", "eve", "e@x.com", "secret123", "different", entity.RoleDoctor},
		{"missing username", "", "e@x.com", "secret123", "secret123", entity.RoleDoctor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.Auth.Register(tc.username, tc.email, tc.pass, tc.confirm, tc.role)
			if !apperr.Is(err, apperr.CodeValidation) {
				t.Errorf("want validation error, got %v", err)
			}
		})
	}
}

func TestLoginUniformError(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", entity.RoleDoctor, false)

	_, errUnknown := env.Auth.Login("nobody", "secret123")
	_, errWrongPass := env.Auth.Login("alice", "wrongpass")

	if !apperr.Is(errUnknown, apperr.CodeUnauthorized) || !apperr.Is(errWrongPass, apperr.CodeUnauthorized) {
		t.Fatalf("want unauthorized for both, got %v / %v", errUnknown, errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("unknown-user and wrong-password messages differ: %q vs %q", errUnknown.Error(), errWrongPass.Error())
	}
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "alice", entity.RoleDoctor, true)

	user, err := env.Auth.Login("alice", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != created.ID || user.Role != entity.RoleDoctor || !user.IsVerified {
		t.Errorf("unexpected identity: %+v", user)
	}
}
