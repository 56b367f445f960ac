package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/xrmtesting/core"
)

func TestEntityBuilder(t *testing.T) {
	owner := uuid.New()
	e := NewEntityBuilder("account").
		WithNewID().
		Attr("name", "Contoso").
		Ref("ownerid", "systemuser", owner, "Admin").
		Option("statuscode", 1, "Active").
		Money("revenue", 10).
		Build()

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "Contoso", e.Attributes["name"])
	assert.Equal(t, core.EntityReference{LogicalName: "systemuser", ID: owner, Name: "Admin"}, e.Attributes["ownerid"])
	assert.Equal(t, "Active", e.FormattedValue("statuscode"))
	assert.True(t, core.ValuesEqual(e.Attributes["revenue"], 10))
}

func TestEntityMetadataBuilder(t *testing.T) {
	md := NewEntityMetadataBuilder("account").
		PrimaryID("accountid").
		PrimaryName("name").
		Attribute("name", core.AttributeTypeString).
		Build()

	assert.Equal(t, "accountid", md.PrimaryIDAttribute)
	attr, ok := md.Attribute("name")
	assert.True(t, ok)
	assert.Equal(t, "account", attr.EntityLogicalName)
}
