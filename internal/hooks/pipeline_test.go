package hooks_test

import (
	"context"
	"errors"
	"testing"

	"gitship/internal/environment"
	"gitship/internal/hooks"
)

func logAction(log *[]string, name string) hooks.Action {
	return func(ctx context.Context, req hooks.Request) error {
		*log = append(*log, name)
		return nil
	}
}

func failAction(log *[]string, name string, err error) hooks.Action {
	return func(ctx context.Context, req hooks.Request) error {
		*log = append(*log, name)
		return err
	}
}

func testRequest() hooks.Request {
	return hooks.Request{
		Environment: environment.Environment{Name: "staging", Remote: "remote-a"},
		Branch:      "bugs",
	}
}

func TestPipeline_RunsInRegistrationOrder(t *testing.T) {
	var log []string
	p := hooks.NewPipeline()
	p.RegisterBeforeDeploy("first", logAction(&log, "first"))
	p.RegisterBeforeDeploy("second", logAction(&log, "second"))
	p.RegisterBeforeDeploy("third", logAction(&log, "third"))

	if err := p.Run(context.Background(), hooks.BeforeDeploy, testRequest()); err != nil {
		t.Fatal(err)
	}

	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("expected %d hook runs, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], log[i])
		}
	}
}

func TestPipeline_OrderSurvivesInterleavedRegistration(t *testing.T) {
	var log []string
	p := hooks.NewPipeline()
	// Registrations against one point interleaved with the other point
	// must not disturb per-point ordering.
	p.RegisterBeforeDeploy("b1", logAction(&log, "b1"))
	p.RegisterAfterDeploy("a1", logAction(&log, "a1"))
	p.RegisterBeforeDeploy("b2", logAction(&log, "b2"))
	p.RegisterAfterDeploy("a2", logAction(&log, "a2"))

	if err := p.Run(context.Background(), hooks.BeforeDeploy, testRequest()); err != nil {
		t.Fatal(err)
	}
	if err := p.Run(context.Background(), hooks.AfterDeploy, testRequest()); err != nil {
		t.Fatal(err)
	}

	want := []string{"b1", "b2", "a1", "a2"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q (full log %v)", i, want[i], log[i], log)
		}
	}
}

func TestPipeline_ShortCircuitsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var log []string
	p := hooks.NewPipeline()
	p.RegisterBeforeDeploy("ok", logAction(&log, "ok"))
	p.RegisterBeforeDeploy("fails", failAction(&log, "fails", boom))
	p.RegisterBeforeDeploy("never", logAction(&log, "never"))

	err := p.Run(context.Background(), hooks.BeforeDeploy, testRequest())
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error to propagate, got %v", err)
	}
	if len(log) != 2 || log[1] != "fails" {
		t.Fatalf("expected run to stop at the failing hook, got %v", log)
	}
}

func TestPipeline_RegistrationHandleCarriesOrder(t *testing.T) {
	p := hooks.NewPipeline()
	r0 := p.RegisterBeforeDeploy("first", func(context.Context, hooks.Request) error { return nil })
	r1 := p.RegisterBeforeDeploy("second", func(context.Context, hooks.Request) error { return nil })
	a0 := p.RegisterAfterDeploy("other-point", func(context.Context, hooks.Request) error { return nil })

	if r0.Order != 0 || r1.Order != 1 {
		t.Fatalf("expected orders 0 and 1, got %d and %d", r0.Order, r1.Order)
	}
	if a0.Order != 0 {
		t.Fatalf("expected after_deploy ordering to be independent, got %d", a0.Order)
	}
	if r0.Point != hooks.BeforeDeploy || a0.Point != hooks.AfterDeploy {
		t.Fatal("registration handle names the wrong extension point")
	}
}

func TestPipeline_EmptyPointRunsNothing(t *testing.T) {
	p := hooks.NewPipeline()
	if err := p.Run(context.Background(), hooks.AfterDeploy, testRequest()); err != nil {
		t.Fatal(err)
	}
}

func TestPipeline_CanceledContextStopsRun(t *testing.T) {
	var log []string
	p := hooks.NewPipeline()
	ctx, cancel := context.WithCancel(context.Background())
	p.RegisterBeforeDeploy("cancels", func(context.Context, hooks.Request) error {
		cancel()
		return nil
	})
	p.RegisterBeforeDeploy("never", logAction(&log, "never"))

	err := p.Run(ctx, hooks.BeforeDeploy, testRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(log) != 0 {
		t.Fatalf("expected no hooks after cancellation, got %v", log)
	}
}
