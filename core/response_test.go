package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrganizationResponse_Accessors(t *testing.T) {
	r := NewOrganizationResponse("Create")
	_, ok := r.ID()
	assert.False(t, ok)

	id := uuid.New()
	r.Results[ResultID] = id
	got, ok := r.ID()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = r.AttributeMetadata()
	assert.False(t, ok)
	_, ok = r.EntityMetadataList()
	assert.False(t, ok)

	r.Results[ResultEntityMetadata] = []*EntityMetadata{{LogicalName: "account"}}
	list, ok := r.EntityMetadataList()
	assert.True(t, ok)
	assert.Len(t, list, 1)
	_, ok = r.EntityMetadata()
	assert.False(t, ok)
}

func TestParameterCollection(t *testing.T) {
	target := NewEntity("account")
	ref := EntityReference{LogicalName: "account", ID: uuid.New()}
	p := ParameterCollection{TargetParameter: target, "EntityMoniker": ref, "Nil": (*Entity)(nil)}

	e, ok := p.Entity(TargetParameter)
	assert.True(t, ok)
	assert.Same(t, target, e)

	_, ok = p.Entity("Nil")
	assert.False(t, ok)

	got, ok := p.EntityReference("EntityMoniker")
	assert.True(t, ok)
	assert.Equal(t, ref, got)
	assert.True(t, p.Contains("Nil"))
}

func TestRequestNames(t *testing.T) {
	for want, req := range map[string]OrganizationRequest{
		"RetrieveAttribute":   &RetrieveAttributeRequest{},
		"RetrieveEntity":      &RetrieveEntityRequest{},
		"RetrieveAllEntities": &RetrieveAllEntitiesRequest{},
		"ExecuteMultiple":     &ExecuteMultipleRequest{},
		"Create":              &CreateRequest{},
		"Update":              &UpdateRequest{},
		"Delete":              &DeleteRequest{},
		"SetState":            &SetStateRequest{},
		"new_Custom":          NewGenericRequest("new_Custom"),
	} {
		assert.Equal(t, want, req.RequestName())
	}
}
