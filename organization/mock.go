package organization

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/hupe1980/xrmtesting/core"
)

// MockService is a testify mock of core.OrganizationService for tests that
// prefer stating expectations over inspecting recorders.
//
//	svc := new(organization.MockService)
//	svc.On("Create", mock.Anything, mock.Anything).Return(id, nil)
type MockService struct {
	mock.Mock
}

// Create implements core.OrganizationService.
func (m *MockService) Create(ctx context.Context, entity *core.Entity) (uuid.UUID, error) {
	args := m.Called(ctx, entity)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// Retrieve implements core.OrganizationService.
func (m *MockService) Retrieve(ctx context.Context, entityName string, id uuid.UUID, columns core.ColumnSet) (*core.Entity, error) {
	args := m.Called(ctx, entityName, id, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Entity), args.Error(1)
}

// Update implements core.OrganizationService.
func (m *MockService) Update(ctx context.Context, entity *core.Entity) error {
	return m.Called(ctx, entity).Error(0)
}

// Delete implements core.OrganizationService.
func (m *MockService) Delete(ctx context.Context, entityName string, id uuid.UUID) error {
	return m.Called(ctx, entityName, id).Error(0)
}

// Associate implements core.OrganizationService.
func (m *MockService) Associate(ctx context.Context, entityName string, id uuid.UUID, relationship core.Relationship, related core.EntityReferenceCollection) error {
	return m.Called(ctx, entityName, id, relationship, related).Error(0)
}

// Disassociate implements core.OrganizationService.
func (m *MockService) Disassociate(ctx context.Context, entityName string, id uuid.UUID, relationship core.Relationship, related core.EntityReferenceCollection) error {
	return m.Called(ctx, entityName, id, relationship, related).Error(0)
}

// Execute implements core.OrganizationService.
func (m *MockService) Execute(ctx context.Context, request core.OrganizationRequest) (*core.OrganizationResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.OrganizationResponse), args.Error(1)
}

// RetrieveMultiple implements core.OrganizationService.
func (m *MockService) RetrieveMultiple(ctx context.Context, query core.QueryBase) (*core.EntityCollection, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.EntityCollection), args.Error(1)
}

var _ core.OrganizationService = (*MockService)(nil)
