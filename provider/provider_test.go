package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/organization"
	"github.com/hupe1980/xrmtesting/plugin"
	"github.com/hupe1980/xrmtesting/tracing"
	"github.com/hupe1980/xrmtesting/workflow"
)

func TestFakeServiceProvider_PluginContext(t *testing.T) {
	execCtx := plugin.NewFakeExecutionContext(core.NewEntity("account"))
	factory := organization.NewFakeServiceFactory(nil)
	tr := tracing.NewFakeService()
	sp := NewFakeServiceProvider(execCtx, func(o *Options) {
		o.Factory = factory
		o.Tracing = tr
	})

	got, err := core.GetService[core.PluginExecutionContext](sp, core.PluginExecutionContextService)
	require.NoError(t, err)
	assert.Same(t, execCtx, got)

	f, err := core.GetService[core.OrganizationServiceFactory](sp, core.OrganizationServiceFactoryService)
	require.NoError(t, err)
	assert.Same(t, factory, f)

	ts, err := core.GetService[core.TracingService](sp, core.TracingServiceService)
	require.NoError(t, err)
	assert.Same(t, tr, ts)

	_, err = sp.GetService(core.WorkflowContextService)
	assert.ErrorIs(t, err, core.ErrUnknownService)
}

func TestFakeServiceProvider_WorkflowContext(t *testing.T) {
	wfCtx := workflow.NewFakeContext(nil)
	sp := NewFakeServiceProvider(wfCtx)

	got, err := core.GetService[core.WorkflowContext](sp, core.WorkflowContextService)
	require.NoError(t, err)
	assert.Same(t, wfCtx, got)

	_, err = sp.GetService(core.PluginExecutionContextService)
	assert.ErrorIs(t, err, core.ErrUnknownService)
}

func TestFakeServiceProvider_Defaults(t *testing.T) {
	sp := NewFakeServiceProvider(nil)

	_, ok := sp.Factory().(*organization.FakeServiceFactory)
	assert.True(t, ok)
	_, ok = sp.Tracing().(*tracing.FakeService)
	assert.True(t, ok)
	assert.Nil(t, sp.Context())
}

func TestFakeServiceProvider_UnknownType(t *testing.T) {
	sp := NewFakeServiceProvider(plugin.NewFakeExecutionContext(nil))

	_, err := sp.GetService(core.ServiceType("IOrganizationService"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownService)
	assert.Equal(t, `unknown service type "IOrganizationService"`, err.Error())
}

func TestGetService_TypeMismatch(t *testing.T) {
	sp := NewFakeServiceProvider(plugin.NewFakeExecutionContext(nil))

	_, err := core.GetService[core.WorkflowContext](sp, core.PluginExecutionContextService)
	assert.Error(t, err)
}
