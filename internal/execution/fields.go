// Package execution holds the state shared by the fake plugin and workflow
// contexts. Both embed Fields and add their own stage information.
package execution

import (
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
)

// Fields implements the getters of core.ExecutionContext over plain values.
// Every getter has a matching setter. Fields is not safe for concurrent
// mutation; contexts are configured before the plugin runs.
type Fields struct {
	primary *core.Entity

	mode                int
	isolationMode       int
	depth               int
	messageName         string
	requestID           *uuid.UUID
	secondaryEntityName string
	inputParameters     core.ParameterCollection
	outputParameters    core.ParameterCollection
	sharedVariables     core.ParameterCollection
	userID              uuid.UUID
	initiatingUserID    uuid.UUID
	businessUnitID      uuid.UUID
	organizationID      uuid.UUID
	organizationName    string
	preEntityImages     core.EntityImageCollection
	postEntityImages    core.EntityImageCollection
	owningExtension     *core.EntityReference
	correlationID       uuid.UUID
	isExecutingOffline  bool
	isOfflinePlayback   bool
	isInTransaction     bool
	operationID         uuid.UUID
	operationCreatedOn  time.Time
}

// NewFields returns Fields with empty parameter bags and image collections,
// fresh initiating user, business unit, organization, correlation and
// operation ids. Request and user ids are left for the caller.
func NewFields(primary *core.Entity) *Fields {
	return &Fields{
		primary:          primary,
		inputParameters:  core.ParameterCollection{},
		outputParameters: core.ParameterCollection{},
		sharedVariables:  core.ParameterCollection{},
		initiatingUserID: uuid.New(),
		businessUnitID:   uuid.New(),
		organizationID:   uuid.New(),
		preEntityImages:  core.EntityImageCollection{},
		postEntityImages: core.EntityImageCollection{},
		correlationID:    uuid.New(),
		operationID:      uuid.New(),
	}
}

// Primary returns the primary entity passed at construction, if any.
func (f *Fields) Primary() *core.Entity { return f.primary }

// PrimaryEntityName returns the primary entity's logical name or "".
func (f *Fields) PrimaryEntityName() string {
	if f.primary == nil {
		return ""
	}
	return f.primary.LogicalName
}

// PrimaryEntityID returns the primary entity's id or uuid.Nil.
func (f *Fields) PrimaryEntityID() uuid.UUID {
	if f.primary == nil {
		return uuid.Nil
	}
	return f.primary.ID
}

func (f *Fields) Mode() int { return f.mode }
func (f *Fields) IsolationMode() int { return f.isolationMode }
func (f *Fields) Depth() int { return f.depth }
func (f *Fields) MessageName() string { return f.messageName }
func (f *Fields) RequestID() *uuid.UUID { return f.requestID }
func (f *Fields) SecondaryEntityName() string { return f.secondaryEntityName }
func (f *Fields) InputParameters() core.ParameterCollection { return f.inputParameters }
func (f *Fields) OutputParameters() core.ParameterCollection { return f.outputParameters }
func (f *Fields) SharedVariables() core.ParameterCollection { return f.sharedVariables }
func (f *Fields) UserID() uuid.UUID { return f.userID }
func (f *Fields) InitiatingUserID() uuid.UUID { return f.initiatingUserID }
func (f *Fields) BusinessUnitID() uuid.UUID { return f.businessUnitID }
func (f *Fields) OrganizationID() uuid.UUID { return f.organizationID }
func (f *Fields) OrganizationName() string { return f.organizationName }
func (f *Fields) PreEntityImages() core.EntityImageCollection {
	return f.preEntityImages
}
func (f *Fields) PostEntityImages() core.EntityImageCollection {
	return f.postEntityImages
}
func (f *Fields) OwningExtension() *core.EntityReference { return f.owningExtension }
func (f *Fields) CorrelationID() uuid.UUID { return f.correlationID }
func (f *Fields) IsExecutingOffline() bool { return f.isExecutingOffline }
func (f *Fields) IsOfflinePlayback() bool { return f.isOfflinePlayback }
func (f *Fields) IsInTransaction() bool { return f.isInTransaction }
func (f *Fields) OperationID() uuid.UUID { return f.operationID }
func (f *Fields) OperationCreatedOn() time.Time { return f.operationCreatedOn }

func (f *Fields) SetMode(v int) { f.mode = v }
func (f *Fields) SetIsolationMode(v int) { f.isolationMode = v }
func (f *Fields) SetDepth(v int) { f.depth = v }
func (f *Fields) SetMessageName(v string) { f.messageName = v }
func (f *Fields) SetRequestID(v *uuid.UUID) { f.requestID = v }
func (f *Fields) SetSecondaryEntityName(v string) { f.secondaryEntityName = v }
func (f *Fields) SetUserID(v uuid.UUID) { f.userID = v }
func (f *Fields) SetInitiatingUserID(v uuid.UUID) { f.initiatingUserID = v }
func (f *Fields) SetBusinessUnitID(v uuid.UUID) { f.businessUnitID = v }
func (f *Fields) SetOrganizationID(v uuid.UUID) { f.organizationID = v }
func (f *Fields) SetOrganizationName(v string) { f.organizationName = v }
func (f *Fields) SetOwningExtension(v *core.EntityReference) {
	f.owningExtension = v
}
func (f *Fields) SetCorrelationID(v uuid.UUID) { f.correlationID = v }
func (f *Fields) SetIsExecutingOffline(v bool) { f.isExecutingOffline = v }
func (f *Fields) SetIsOfflinePlayback(v bool) { f.isOfflinePlayback = v }
func (f *Fields) SetIsInTransaction(v bool) { f.isInTransaction = v }
func (f *Fields) SetOperationID(v uuid.UUID) { f.operationID = v }
func (f *Fields) SetOperationCreatedOn(v time.Time) { f.operationCreatedOn = v }

// SetInputParameters replaces the input bag. nil resets it to empty.
func (f *Fields) SetInputParameters(v core.ParameterCollection) {
	f.inputParameters = orEmpty(v)
}

// SetOutputParameters replaces the output bag. nil resets it to empty.
func (f *Fields) SetOutputParameters(v core.ParameterCollection) {
	f.outputParameters = orEmpty(v)
}

// SetSharedVariables replaces the shared variables. nil resets them to empty.
func (f *Fields) SetSharedVariables(v core.ParameterCollection) {
	f.sharedVariables = orEmpty(v)
}

// SetPreEntityImages replaces the pre-images. nil resets them to empty.
func (f *Fields) SetPreEntityImages(v core.EntityImageCollection) {
	if v == nil {
		v = core.EntityImageCollection{}
	}
	f.preEntityImages = v
}

// SetPostEntityImages replaces the post-images. nil resets them to empty.
func (f *Fields) SetPostEntityImages(v core.EntityImageCollection) {
	if v == nil {
		v = core.EntityImageCollection{}
	}
	f.postEntityImages = v
}

// AddPreEntityImage registers a pre-image under name.
func (f *Fields) AddPreEntityImage(name string, image *core.Entity) {
	f.preEntityImages[name] = image
}

// AddPostEntityImage registers a post-image under name.
func (f *Fields) AddPostEntityImage(name string, image *core.Entity) {
	f.postEntityImages[name] = image
}

func orEmpty(v core.ParameterCollection) core.ParameterCollection {
	if v == nil {
		return core.ParameterCollection{}
	}
	return v
}

var _ core.ExecutionContext = (*Fields)(nil)
