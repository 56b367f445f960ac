package plaintext

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/xrmtesting/core"
)

var (
	id1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	id2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

func TestReference(t *testing.T) {
	ref := core.NewEntityReference("new_entity", id1)
	assert.Equal(t, "new_entity | 00000000-0000-0000-0000-000000000001 | ", Reference(ref))

	ref.Name = "Test"
	assert.Equal(t, "new_entity | 00000000-0000-0000-0000-000000000001 | Test", Reference(ref))
}

func TestReferenceText_Indent(t *testing.T) {
	ref := core.NewEntityReference("new_entity", id1)
	assert.Equal(t, "    LogicalName = new_entity\n"+
		"    ID = 00000000-0000-0000-0000-000000000001\n"+
		"    Name =", ReferenceText(ref, 4))

	ref.Name = "Test"
	assert.Equal(t, "    LogicalName = new_entity\n"+
		"    ID = 00000000-0000-0000-0000-000000000001\n"+
		"    Name = Test", ReferenceText(ref, 4))
}

func TestReferenceText_ZeroIndent(t *testing.T) {
	ref := core.EntityReference{LogicalName: "contact", ID: id2, Name: "John"}
	assert.Equal(t, "LogicalName = contact\n"+
		"ID = 00000000-0000-0000-0000-000000000002\n"+
		"Name = John", ReferenceText(ref, 0))
	assert.Equal(t, ReferenceText(ref, 0), ReferenceText(ref, -3))
}

func TestEntity_AllValueKinds(t *testing.T) {
	money, err := core.NewMoneyFromString("1250.75")
	require.NoError(t, err)

	party := core.NewEntity("activityparty")
	party.Set("partyid", core.EntityReference{LogicalName: "contact", ID: id2, Name: "John"})

	e := core.NewEntityWithID("account", id1)
	e.Set("name", "Contoso")
	e.Set("primarycontactid", core.EntityReference{LogicalName: "contact", ID: id2, Name: "John"})
	e.Set("statuscode", core.NewOptionSetValue(1))
	e.FormattedValues["statuscode"] = "Active"
	e.Set("revenue", money)
	e.Set("to", core.NewEntityCollection(party))
	e.Set("numberofemployees", 12)
	e.Set("c.fullname", core.AliasedValue{EntityLogicalName: "contact", AttributeLogicalName: "fullname", Value: "John Smith"})

	want := "LogicalName = account\n" +
		"ID = 00000000-0000-0000-0000-000000000001\n" +
		"c.fullname = John Smith\n" +
		"name = Contoso\n" +
		"numberofemployees = 12\n" +
		"primarycontactid = contact | 00000000-0000-0000-0000-000000000002 | John\n" +
		"revenue = 1250.75\n" +
		"statuscode = 1 | Active\n" +
		"to =>\n" +
		"    LogicalName = activityparty\n" +
		"    ID = 00000000-0000-0000-0000-000000000000\n" +
		"    partyid = contact | 00000000-0000-0000-0000-000000000002 | John"
	assert.Equal(t, want, Entity(e))
}

func TestEntity_AliasedMoneyAndNil(t *testing.T) {
	e := core.NewEntityWithID("opportunity", id1)
	e.Set("a.amount", core.AliasedValue{Value: core.NewMoney(10)})
	e.Set("description", nil)

	assert.Equal(t, "LogicalName = opportunity\n"+
		"ID = 00000000-0000-0000-0000-000000000001\n"+
		"a.amount = 10\n"+
		"description =", Entity(e))
}

func TestEntity_OptionWithoutFormattedValue(t *testing.T) {
	e := core.NewEntityWithID("incident", id1)
	e.Set("prioritycode", core.NewOptionSetValue(2))
	assert.Equal(t, "LogicalName = incident\n"+
		"ID = 00000000-0000-0000-0000-000000000001\n"+
		"prioritycode = 2 |", Entity(e))
}

func TestEntity_Nil(t *testing.T) {
	assert.Empty(t, Entity(nil))
}

func TestColumnSet(t *testing.T) {
	assert.Equal(t, "ColumnSet = All", ColumnSet(core.AllColumnsSet()))
	assert.Equal(t, "ColumnSet = name, revenue", ColumnSet(core.NewColumnSet("name", "revenue")))
}
