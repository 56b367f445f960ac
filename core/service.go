package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// OrganizationService is the data API plugin code talks to. Implementations
// must be safe for use by a single plugin execution; the in-memory fake is
// additionally safe for concurrent use.
type OrganizationService interface {
	Create(ctx context.Context, entity *Entity) (uuid.UUID, error)
	Retrieve(ctx context.Context, entityName string, id uuid.UUID, columns ColumnSet) (*Entity, error)
	Update(ctx context.Context, entity *Entity) error
	Delete(ctx context.Context, entityName string, id uuid.UUID) error
	Associate(ctx context.Context, entityName string, id uuid.UUID, relationship Relationship, related EntityReferenceCollection) error
	Disassociate(ctx context.Context, entityName string, id uuid.UUID, relationship Relationship, related EntityReferenceCollection) error
	Execute(ctx context.Context, request OrganizationRequest) (*OrganizationResponse, error)
	RetrieveMultiple(ctx context.Context, query QueryBase) (*EntityCollection, error)
}

// OrganizationServiceFactory hands out OrganizationService instances acting
// on behalf of a user. A nil userID means the calling (system) user.
type OrganizationServiceFactory interface {
	CreateOrganizationService(userID *uuid.UUID) OrganizationService
}

// TracingService is the plugin trace log sink.
type TracingService interface {
	Trace(format string, args ...any)
}

// ServiceType identifies a service a ServiceProvider can resolve.
type ServiceType string

// Service types resolvable from a ServiceProvider.
const (
	PluginExecutionContextService     ServiceType = "PluginExecutionContext"
	WorkflowContextService            ServiceType = "WorkflowContext"
	OrganizationServiceFactoryService ServiceType = "OrganizationServiceFactory"
	TracingServiceService             ServiceType = "TracingService"
)

// ServiceProvider is the service locator passed to a plugin.
type ServiceProvider interface {
	GetService(serviceType ServiceType) (any, error)
}

// GetService resolves a service and asserts its type in one step.
//
//	ctx, err := core.GetService[core.PluginExecutionContext](sp, core.PluginExecutionContextService)
func GetService[T any](sp ServiceProvider, serviceType ServiceType) (T, error) {
	var zero T
	svc, err := sp.GetService(serviceType)
	if err != nil {
		return zero, err
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, fmt.Errorf("service %q has type %T", serviceType, svc)
	}
	return typed, nil
}

// Plugin is business logic triggered by a platform event.
type Plugin interface {
	Execute(ctx context.Context, sp ServiceProvider) error
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(ctx context.Context, sp ServiceProvider) error

// Execute calls f(ctx, sp).
func (f PluginFunc) Execute(ctx context.Context, sp ServiceProvider) error { return f(ctx, sp) }
