package organization

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/xrmtesting/core"
)

func TestFakeServiceFactory_SharesService(t *testing.T) {
	svc := NewFakeService()
	f := NewFakeServiceFactory(svc)

	userID := uuid.New()
	assert.Same(t, svc, f.CreateOrganizationService(nil))
	assert.Same(t, svc, f.CreateOrganizationService(&userID))

	got := f.RequestedUserIDs()
	require.Len(t, got, 2)
	assert.Nil(t, got[0])
	require.NotNil(t, got[1])
	assert.Equal(t, userID, *got[1])

	// Later changes to the caller's variable do not leak into the record.
	userID = uuid.Nil
	assert.NotEqual(t, uuid.Nil, *f.RequestedUserIDs()[1])
}

func TestFakeServiceFactory_DefaultsToFakeService(t *testing.T) {
	f := NewFakeServiceFactory(nil)
	_, ok := f.Service().(*FakeService)
	assert.True(t, ok)
}

func TestMockService(t *testing.T) {
	m := new(MockService)
	ctx := context.Background()
	id := uuid.New()
	account := core.NewEntityWithID("account", id)

	m.On("Create", ctx, mock.AnythingOfType("*core.Entity")).Return(id, nil)
	m.On("Retrieve", ctx, "account", id, core.AllColumnsSet()).Return(account, nil)
	m.On("Retrieve", ctx, "contact", mock.Anything, mock.Anything).Return(nil, core.ErrNotFound)
	m.On("Delete", ctx, "account", id).Return(errors.New("locked"))
	m.On("Execute", ctx, mock.Anything).Return(core.NewOrganizationResponse("WhoAmI"), nil)
	m.On("RetrieveMultiple", ctx, mock.Anything).Return(core.NewEntityCollection(account), nil)

	got, err := m.Create(ctx, core.NewEntity("account"))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	e, err := m.Retrieve(ctx, "account", id, core.AllColumnsSet())
	require.NoError(t, err)
	assert.Same(t, account, e)

	e, err = m.Retrieve(ctx, "contact", uuid.New(), core.AllColumnsSet())
	assert.Nil(t, e)
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.EqualError(t, m.Delete(ctx, "account", id), "locked")

	resp, err := m.Execute(ctx, whoAmIRequest{})
	require.NoError(t, err)
	assert.Equal(t, "WhoAmI", resp.ResponseName)

	coll, err := m.RetrieveMultiple(ctx, core.NewQueryExpression("account"))
	require.NoError(t, err)
	assert.Equal(t, 1, coll.Len())

	m.AssertExpectations(t)
}
