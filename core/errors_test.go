package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	var err error = &RecordNotFoundError{EntityName: "account", ID: id}
	assert.Equal(t, `Record "account" with ID = 00000000-0000-0000-0000-000000000001 is not found`, err.Error())
	assert.ErrorIs(t, fmt.Errorf("retrieve: %w", err), ErrNotFound)

	err = &MetadataNotFoundError{Kind: MetadataAttribute, LogicalName: "name"}
	assert.Equal(t, "Attribute metadata with logical name = name is not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	err = &NotImplementedError{What: "WhoAmI"}
	assert.Equal(t, "not implemented: WhoAmI", err.Error())
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.False(t, errors.Is(err, ErrNotFound))
}

type stubProvider map[ServiceType]any

func (s stubProvider) GetService(t ServiceType) (any, error) {
	if v, ok := s[t]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownService, t)
}

type stubTracer struct{ msgs []string }

func (s *stubTracer) Trace(format string, args ...any) { s.msgs = append(s.msgs, fmt.Sprintf(format, args...)) }

func TestGetService(t *testing.T) {
	tr := &stubTracer{}
	sp := stubProvider{TracingServiceService: tr, OrganizationServiceFactoryService: "not a factory"}

	got, err := GetService[TracingService](sp, TracingServiceService)
	require.NoError(t, err)
	got.Trace("hi %d", 1)
	assert.Equal(t, []string{"hi 1"}, tr.msgs)

	_, err = GetService[OrganizationServiceFactory](sp, OrganizationServiceFactoryService)
	assert.EqualError(t, err, `service "OrganizationServiceFactory" has type string`)

	_, err = GetService[PluginExecutionContext](sp, PluginExecutionContextService)
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestPluginFunc(t *testing.T) {
	called := false
	var p Plugin = PluginFunc(func(context.Context, ServiceProvider) error {
		called = true
		return nil
	})
	require.NoError(t, p.Execute(context.Background(), stubProvider{}))
	assert.True(t, called)
}
