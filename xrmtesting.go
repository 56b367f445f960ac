// Package xrmtesting provides in-memory fakes of the CRM plugin SDK so that
// plugins and custom workflow activities can be unit tested without a
// server. Most tests interact with this package by:
//  1. Creating a Harness via New() (optionally seeding it from a YAML fixture)
//  2. Running the plugin under test with Run
//  3. Asserting on the recorders of the fake organization service and the
//     tracing sink
//
// The individual fakes live in their own packages (organization, plugin,
// workflow, provider, tracing) and can be wired by hand when a test needs
// finer control.
package xrmtesting

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/fixture"
	"github.com/hupe1980/xrmtesting/logging"
	"github.com/hupe1980/xrmtesting/organization"
	"github.com/hupe1980/xrmtesting/plugin"
	"github.com/hupe1980/xrmtesting/provider"
	"github.com/hupe1980/xrmtesting/tracing"
	"github.com/hupe1980/xrmtesting/workflow"
)

// Options configures a Harness.
type Options struct {
	// Logger is shared by every fake (defaults to NoOp).
	Logger logging.Logger

	// Output receives the plain-text traces of the organization and tracing
	// fakes (defaults to io.Discard).
	Output io.Writer

	// PrimaryEntity is the record the execution context is built around.
	PrimaryEntity *core.Entity

	// Workflow builds a workflow context instead of a plugin context.
	Workflow bool

	// FixturePath names a YAML fixture loaded into the organization service.
	FixturePath string

	// GenerateIDs makes the default organization service hand out fresh ids
	// from Create.
	GenerateIDs bool

	// Service replaces the default organization.FakeService, e.g. with an
	// organization.MockService. A fixture can only be loaded into services
	// implementing fixture.Seeder.
	Service core.OrganizationService
}

// Harness wires the fakes a plugin sees at run time.
type Harness struct {
	logger   logging.Logger
	service  core.OrganizationService
	factory  *organization.FakeServiceFactory
	tracing  *tracing.FakeService
	plugin   *plugin.FakeExecutionContext
	workflow *workflow.FakeContext
	provider *provider.FakeServiceProvider
}

// New builds a harness. It fails only when the fixture cannot be loaded.
func New(optFns ...func(o *Options)) (*Harness, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Output: io.Discard,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := logging.OrNoOp(opts.Logger)

	svc := opts.Service
	if svc == nil {
		svc = organization.NewFakeService(func(o *organization.Options) {
			o.Logger = logger
			o.Output = opts.Output
			o.GenerateIDs = opts.GenerateIDs
		})
	}
	if opts.FixturePath != "" {
		seeder, ok := svc.(fixture.Seeder)
		if !ok {
			return nil, fmt.Errorf("service %T cannot be seeded from a fixture", svc)
		}
		fx, err := fixture.Load(opts.FixturePath)
		if err != nil {
			return nil, err
		}
		fx.Apply(seeder)
	}

	h := &Harness{
		logger:  logger,
		service: svc,
		factory: organization.NewFakeServiceFactory(svc),
		tracing: tracing.NewFakeService(func(o *tracing.Options) {
			o.Logger = logger
			o.Output = opts.Output
		}),
	}

	var execCtx core.ExecutionContext
	if opts.Workflow {
		h.workflow = workflow.NewFakeContext(opts.PrimaryEntity)
		execCtx = h.workflow
	} else {
		h.plugin = plugin.NewFakeExecutionContext(opts.PrimaryEntity)
		execCtx = h.plugin
	}
	h.provider = provider.NewFakeServiceProvider(execCtx, func(o *provider.Options) {
		o.Factory = h.factory
		o.Tracing = h.tracing
	})
	return h, nil
}

// Service returns the organization service handed out by the factory.
func (h *Harness) Service() core.OrganizationService { return h.service }

// FakeService returns the default fake organization service, or nil when
// Options.Service replaced it with something else.
func (h *Harness) FakeService() *organization.FakeService {
	svc, _ := h.service.(*organization.FakeService)
	return svc
}

// Factory returns the organization service factory.
func (h *Harness) Factory() *organization.FakeServiceFactory { return h.factory }

// Tracing returns the tracing sink.
func (h *Harness) Tracing() *tracing.FakeService { return h.tracing }

// PluginContext returns the plugin execution context (nil in workflow mode).
func (h *Harness) PluginContext() *plugin.FakeExecutionContext { return h.plugin }

// WorkflowContext returns the workflow context (nil in plugin mode).
func (h *Harness) WorkflowContext() *workflow.FakeContext { return h.workflow }

// Provider returns the service provider passed to plugins.
func (h *Harness) Provider() *provider.FakeServiceProvider { return h.provider }

type operationLogger interface {
	LogOperation(op string, dur time.Duration, success bool, err error)
}

// Run executes p against the harness provider and returns its error.
func (h *Harness) Run(ctx context.Context, p core.Plugin) error {
	if p == nil {
		return fmt.Errorf("run: plugin is nil")
	}
	start := time.Now()
	err := p.Execute(ctx, h.provider)
	if ol, ok := h.logger.(operationLogger); ok {
		ol.LogOperation("harness.run", time.Since(start), err == nil, err)
	} else {
		h.logger.Debug("harness.run", "duration", time.Since(start), "success", err == nil)
	}
	return err
}
