package core

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionContext describes the event that triggered a plugin or workflow:
// the message, the primary record, the calling user and the parameter bags.
type ExecutionContext interface {
	Mode() int
	IsolationMode() int
	Depth() int
	MessageName() string
	PrimaryEntityName() string
	PrimaryEntityID() uuid.UUID
	RequestID() *uuid.UUID
	SecondaryEntityName() string
	InputParameters() ParameterCollection
	OutputParameters() ParameterCollection
	SharedVariables() ParameterCollection
	UserID() uuid.UUID
	InitiatingUserID() uuid.UUID
	BusinessUnitID() uuid.UUID
	OrganizationID() uuid.UUID
	OrganizationName() string
	PreEntityImages() EntityImageCollection
	PostEntityImages() EntityImageCollection
	OwningExtension() *EntityReference
	CorrelationID() uuid.UUID
	IsExecutingOffline() bool
	IsOfflinePlayback() bool
	IsInTransaction() bool
	OperationID() uuid.UUID
	OperationCreatedOn() time.Time
}

// PluginExecutionContext is the context handed to a registered plugin step.
type PluginExecutionContext interface {
	ExecutionContext
	Stage() int
	ParentContext() PluginExecutionContext
}

// WorkflowContext is the context handed to a custom workflow activity.
type WorkflowContext interface {
	ExecutionContext
	StageName() string
	WorkflowCategory() int
	WorkflowMode() int
	ParentContext() WorkflowContext
}

// Plugin pipeline stages.
const (
	StagePreValidation = 10
	StagePreOperation  = 20
	StageMainOperation = 30
	StagePostOperation = 40
)

// Execution modes.
const (
	ModeSynchronous  = 0
	ModeAsynchronous = 1
)
