package service

import (
	"context"
	"errors"
	"testing"

	"github.com/platformkit/auth-service/internal/core/domain"
)

func TestRoleSeeder_AllRolesExist(t *testing.T) {
	roles := newStubRoleRegistry()
	for _, name := range domain.KnownRoles() {
		roles.roles[name] = true
	}
	seeder := NewRoleSeeder(roles)

	outcome, err := seeder.EnsureRoles(context.Background())
	if err != nil {
		t.Fatalf("EnsureRoles returned error: %v", err)
	}
	if outcome != domain.SeedAlreadyDone {
		t.Fatalf("expected SeedAlreadyDone, got %q", outcome)
	}
	if len(roles.createCalls) != 0 {
		t.Fatalf("no creates expected, got %v", roles.createCalls)
	}
}

func TestRoleSeeder_RecreatesAllWhenAnyMissing(t *testing.T) {
	roles := newStubRoleRegistry()
	roles.roles[domain.RoleUser] = true
	roles.roles[domain.RoleAdmin] = true
	// OWNER missing
	seeder := NewRoleSeeder(roles)

	outcome, err := seeder.EnsureRoles(context.Background())
	if err != nil {
		t.Fatalf("EnsureRoles returned error: %v", err)
	}
	if outcome != domain.SeedCompleted {
		t.Fatalf("expected SeedCompleted, got %q", outcome)
	}
	// all three are recreated, not only the missing one
	want := domain.KnownRoles()
	if len(roles.createCalls) != len(want) {
		t.Fatalf("expected %d create calls, got %v", len(want), roles.createCalls)
	}
	for i, name := range want {
		if roles.createCalls[i] != name {
			t.Fatalf("create call %d: expected %s, got %s", i, name, roles.createCalls[i])
		}
	}
}

func TestRoleSeeder_SecondRunIsNoOp(t *testing.T) {
	roles := newStubRoleRegistry()
	seeder := NewRoleSeeder(roles)

	if _, err := seeder.EnsureRoles(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	creates := len(roles.createCalls)

	outcome, err := seeder.EnsureRoles(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if outcome != domain.SeedAlreadyDone {
		t.Fatalf("expected SeedAlreadyDone on second run, got %q", outcome)
	}
	if len(roles.createCalls) != creates {
		t.Fatalf("second run issued creates: %v", roles.createCalls[creates:])
	}
}

func TestRoleSeeder_CreateErrorSurfaces(t *testing.T) {
	roles := newStubRoleRegistry()
	roles.createErr = errors.New("registry down")
	seeder := NewRoleSeeder(roles)

	if _, err := seeder.EnsureRoles(context.Background()); !errors.Is(err, roles.createErr) {
		t.Fatalf("expected create error, got %v", err)
	}
}

func TestRoleSeeder_ExistsErrorSurfaces(t *testing.T) {
	roles := newStubRoleRegistry()
	roles.existsErr = errors.New("registry down")
	seeder := NewRoleSeeder(roles)

	if _, err := seeder.EnsureRoles(context.Background()); !errors.Is(err, roles.existsErr) {
		t.Fatalf("expected exists error, got %v", err)
	}
}
