// Package provider implements the service locator handed to plugins and
// workflow activities.
package provider

import (
	"fmt"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/organization"
	"github.com/hupe1980/xrmtesting/tracing"
)

// Options configures a FakeServiceProvider.
type Options struct {
	// Factory is returned for core.OrganizationServiceFactoryService
	// (defaults to an organization.FakeServiceFactory over a new FakeService).
	Factory core.OrganizationServiceFactory

	// Tracing is returned for core.TracingServiceService (defaults to a new
	// tracing.FakeService).
	Tracing core.TracingService
}

// FakeServiceProvider resolves the execution context, the organization
// service factory and the tracing service.
type FakeServiceProvider struct {
	context core.ExecutionContext
	factory core.OrganizationServiceFactory
	tracing core.TracingService
}

// NewFakeServiceProvider builds a provider around ctx, which is usually a
// plugin.FakeExecutionContext or a workflow.FakeContext.
func NewFakeServiceProvider(ctx core.ExecutionContext, optFns ...func(o *Options)) *FakeServiceProvider {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Factory == nil {
		opts.Factory = organization.NewFakeServiceFactory(nil)
	}
	if opts.Tracing == nil {
		opts.Tracing = tracing.NewFakeService()
	}
	return &FakeServiceProvider{context: ctx, factory: opts.Factory, tracing: opts.Tracing}
}

// GetService returns the service registered for serviceType. Asking for a
// plugin context when the provider holds a workflow context (or the other
// way round) fails like any unknown type, with core.ErrUnknownService.
func (p *FakeServiceProvider) GetService(serviceType core.ServiceType) (any, error) {
	switch serviceType {
	case core.PluginExecutionContextService:
		if ctx, ok := p.context.(core.PluginExecutionContext); ok {
			return ctx, nil
		}
	case core.WorkflowContextService:
		if ctx, ok := p.context.(core.WorkflowContext); ok {
			return ctx, nil
		}
	case core.OrganizationServiceFactoryService:
		return p.factory, nil
	case core.TracingServiceService:
		return p.tracing, nil
	}
	return nil, fmt.Errorf("%w %q", core.ErrUnknownService, serviceType)
}

// Context returns the execution context.
func (p *FakeServiceProvider) Context() core.ExecutionContext { return p.context }

// Factory returns the organization service factory.
func (p *FakeServiceProvider) Factory() core.OrganizationServiceFactory { return p.factory }

// Tracing returns the tracing service.
func (p *FakeServiceProvider) Tracing() core.TracingService { return p.tracing }

var _ core.ServiceProvider = (*FakeServiceProvider)(nil)
