// Package plugin provides FakeExecutionContext, an in-memory
// core.PluginExecutionContext for driving plugins in unit tests.
package plugin

import (
	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/internal/execution"
)

// FakeExecutionContext is a settable plugin execution context. All
// ExecutionContext getters and their setters come from the embedded
// execution.Fields.
type FakeExecutionContext struct {
	*execution.Fields

	stage  int
	parent core.PluginExecutionContext
}

// NewFakeExecutionContext creates a context whose request, user, initiating
// user, business unit, organization, correlation and operation ids are
// fresh UUIDs. A non-nil primary entity becomes the "Target" input
// parameter and supplies PrimaryEntityName and PrimaryEntityID.
func NewFakeExecutionContext(primary *core.Entity) *FakeExecutionContext {
	f := execution.NewFields(primary)
	requestID := uuid.New()
	f.SetRequestID(&requestID)
	f.SetUserID(uuid.New())
	if primary != nil {
		f.SetInputParameters(core.ParameterCollection{core.TargetParameter: primary})
	}
	return &FakeExecutionContext{Fields: f}
}

// Stage returns the pipeline stage (see core.StagePreValidation and friends).
func (c *FakeExecutionContext) Stage() int { return c.stage }

// SetStage sets the pipeline stage.
func (c *FakeExecutionContext) SetStage(stage int) { c.stage = stage }

// ParentContext returns the context of the operation that triggered this one.
func (c *FakeExecutionContext) ParentContext() core.PluginExecutionContext { return c.parent }

// SetParentContext sets the parent context.
func (c *FakeExecutionContext) SetParentContext(parent core.PluginExecutionContext) {
	c.parent = parent
}

var _ core.PluginExecutionContext = (*FakeExecutionContext)(nil)
