package hooks

import (
	"context"
	"fmt"

	"gitship/internal/environment"
	"gitship/internal/logger"
)

// ExtensionPoint names a place in the deploy lifecycle where actions run.
type ExtensionPoint string

const (
	BeforeDeploy ExtensionPoint = "before_deploy"
	AfterDeploy  ExtensionPoint = "after_deploy"
)

// Request carries the resolved deploy parameters into each hook. It is
// constructed once per invocation and never mutated.
type Request struct {
	Environment environment.Environment
	Branch      string
}

// Action is a single hook callable. A non-nil error stops the pipeline.
type Action func(ctx context.Context, req Request) error

// Registration identifies a registered hook within its extension point.
type Registration struct {
	Point ExtensionPoint
	Order int
	Name  string
}

type entry struct {
	reg    Registration
	action Action
}

var hookLogs = logger.PackageLogger("hooks", "🪝 hooks")

// Pipeline holds ordered hook registrations per extension point. Hooks run
// sequentially in registration order; registration happens before any run
// and the list is not mutated during one.
type Pipeline struct {
	entries map[ExtensionPoint][]entry
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{entries: make(map[ExtensionPoint][]entry)}
}

// Register appends an action to the given extension point and returns its
// registration handle. Order is the append position, so hooks at the same
// point always execute in strictly increasing registration order.
func (p *Pipeline) Register(point ExtensionPoint, name string, action Action) Registration {
	reg := Registration{Point: point, Order: len(p.entries[point]), Name: name}
	p.entries[point] = append(p.entries[point], entry{reg: reg, action: action})
	return reg
}

// RegisterBeforeDeploy registers an action at the before_deploy point.
func (p *Pipeline) RegisterBeforeDeploy(name string, action Action) Registration {
	return p.Register(BeforeDeploy, name, action)
}

// RegisterAfterDeploy registers an action at the after_deploy point.
func (p *Pipeline) RegisterAfterDeploy(name string, action Action) Registration {
	return p.Register(AfterDeploy, name, action)
}

// Run invokes every action registered at point, in registration order,
// sequentially. The first failure short-circuits the rest and is returned
// to the caller; no rollback of already-run hooks is attempted.
func (p *Pipeline) Run(ctx context.Context, point ExtensionPoint, req Request) error {
	for _, e := range p.entries[point] {
		if err := ctx.Err(); err != nil {
			return err
		}
		hookLogs.Debug("running %s hook %d (%s)", point, e.reg.Order, e.reg.Name)
		if err := e.action(ctx, req); err != nil {
			return fmt.Errorf("%s hook %q failed: %w", point, e.reg.Name, err)
		}
	}
	return nil
}

// Len reports how many hooks are registered at point.
func (p *Pipeline) Len(point ExtensionPoint) int {
	return len(p.entries[point])
}
