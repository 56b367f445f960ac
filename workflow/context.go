// Package workflow provides FakeContext, an in-memory core.WorkflowContext
// for driving custom workflow activities in unit tests.
package workflow

import (
	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/internal/execution"
)

// FakeContext is a settable workflow context.
//
// Unlike the plugin context, RequestID starts nil and UserID starts as
// uuid.Nil, and the primary entity is not copied into the input parameters.
type FakeContext struct {
	*execution.Fields

	stageName        string
	workflowCategory int
	workflowMode     int
	parent           core.WorkflowContext
}

// NewFakeContext creates a workflow context for the given primary entity
// (which may be nil).
func NewFakeContext(primary *core.Entity) *FakeContext {
	return &FakeContext{Fields: execution.NewFields(primary)}
}

func (c *FakeContext) StageName() string { return c.stageName }
func (c *FakeContext) WorkflowCategory() int { return c.workflowCategory }
func (c *FakeContext) WorkflowMode() int { return c.workflowMode }

func (c *FakeContext) SetStageName(name string) { c.stageName = name }
func (c *FakeContext) SetWorkflowCategory(v int) { c.workflowCategory = v }
func (c *FakeContext) SetWorkflowMode(v int) { c.workflowMode = v }

// ParentContext returns the context of the workflow that started this one.
func (c *FakeContext) ParentContext() core.WorkflowContext { return c.parent }

// SetParentContext sets the parent context.
func (c *FakeContext) SetParentContext(parent core.WorkflowContext) { c.parent = parent }

var _ core.WorkflowContext = (*FakeContext)(nil)
