package organization

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
)

// FakeServiceFactory hands out one shared organization service regardless
// of the requested user.
type FakeServiceFactory struct {
	service core.OrganizationService

	mu      sync.Mutex
	userIDs []*uuid.UUID
}

// NewFakeServiceFactory wraps svc. A nil svc is replaced by a new FakeService.
func NewFakeServiceFactory(svc core.OrganizationService) *FakeServiceFactory {
	if svc == nil {
		svc = NewFakeService()
	}
	return &FakeServiceFactory{service: svc}
}

// CreateOrganizationService returns the shared service and records userID.
func (f *FakeServiceFactory) CreateOrganizationService(userID *uuid.UUID) core.OrganizationService {
	f.mu.Lock()
	defer f.mu.Unlock()
	if userID != nil {
		id := *userID
		userID = &id
	}
	f.userIDs = append(f.userIDs, userID)
	return f.service
}

// Service returns the shared service.
func (f *FakeServiceFactory) Service() core.OrganizationService { return f.service }

// RequestedUserIDs returns the user ids passed to CreateOrganizationService,
// in call order. A nil entry stands for the calling user.
func (f *FakeServiceFactory) RequestedUserIDs() []*uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*uuid.UUID{}, f.userIDs...)
}

var _ core.OrganizationServiceFactory = (*FakeServiceFactory)(nil)
