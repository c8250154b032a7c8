package environment_test

import (
	"errors"
	"testing"

	"gitship/internal/environment"
)

func TestRegistry_ResolveReturnsRegisteredRemote(t *testing.T) {
	r := environment.NewRegistry()
	if err := r.Register("staging", "remote-a"); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("production", "remote-b"); err != nil {
		t.Fatal(err)
	}

	env, err := r.Resolve("staging")
	if err != nil {
		t.Fatal(err)
	}
	if env.Remote != "remote-a" {
		t.Fatalf("expected remote-a, got %q", env.Remote)
	}

	env, err = r.Resolve("production")
	if err != nil {
		t.Fatal(err)
	}
	if env.Remote != "remote-b" {
		t.Fatalf("expected remote-b, got %q", env.Remote)
	}
}

func TestRegistry_UnknownNameFails(t *testing.T) {
	r := environment.NewRegistry()
	if err := r.Register("staging", "remote-a"); err != nil {
		t.Fatal(err)
	}

	_, err := r.Resolve("qa")
	if !errors.Is(err, environment.ErrUnknownEnvironment) {
		t.Fatalf("expected ErrUnknownEnvironment, got %v", err)
	}
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	r := environment.NewRegistry()
	if err := r.Register("staging", "remote-a"); err != nil {
		t.Fatal(err)
	}

	err := r.Register("staging", "remote-b")
	if !errors.Is(err, environment.ErrDuplicateEnvironment) {
		t.Fatalf("expected ErrDuplicateEnvironment, got %v", err)
	}

	// The original registration survives the rejected one.
	env, err := r.Resolve("staging")
	if err != nil {
		t.Fatal(err)
	}
	if env.Remote != "remote-a" {
		t.Fatalf("expected remote-a, got %q", env.Remote)
	}
}

func TestRegistry_RejectsEmptyNameAndRemote(t *testing.T) {
	r := environment.NewRegistry()
	if err := r.Register("", "remote-a"); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := r.Register("staging", ""); err == nil {
		t.Fatal("expected error for empty remote")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := environment.NewRegistry()
	for _, name := range []string{"production", "qa", "staging"} {
		if err := r.Register(name, "remote-"+name); err != nil {
			t.Fatal(err)
		}
	}

	got := r.List()
	want := []string{"production", "qa", "staging"}
	if len(got) != len(want) {
		t.Fatalf("expected %d environments, got %d", len(want), len(got))
	}
	for i, env := range got {
		if env.Name != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], env.Name)
		}
	}
}
