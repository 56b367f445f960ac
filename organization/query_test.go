package organization

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/xrmtesting/core"
)

var (
	ownerID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	c1      = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	c2      = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	c3      = uuid.MustParse("00000000-0000-0000-0000-0000000000c3")
)

func contacts() []*core.Entity {
	smith := core.NewEntityWithID("contact", c1)
	smith.Set("lastname", "Smith")
	smith.Set("emailaddress1", "john@contoso.com")
	smith.Set("statecode", core.NewOptionSetValue(0))
	smith.Set("numberofchildren", 2)
	smith.Set("ownerid", core.NewEntityReference("systemuser", ownerID))
	smith.Set("birthdate", time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC))
	smith.Set("donotemail", false)

	jones := core.NewEntityWithID("contact", c2)
	jones.Set("lastname", "Jones")
	jones.Set("statecode", core.NewOptionSetValue(1))
	jones.Set("numberofchildren", 0)
	jones.Set("donotemail", true)

	smythe := core.NewEntityWithID("contact", c3)
	smythe.Set("lastname", "Smythe")
	smythe.Set("emailaddress1", "ann@fabrikam.com")
	smythe.Set("statecode", core.NewOptionSetValue(0))
	smythe.Set("numberofchildren", 5)

	account := core.NewEntityWithID("account", accountID)
	account.Set("name", "Contoso")

	return []*core.Entity{smith, jones, smythe, account}
}

func queryService() *FakeService {
	return NewFakeService(func(o *Options) { o.Entities = contacts() })
}

func ids(c *core.EntityCollection) []uuid.UUID {
	out := make([]uuid.UUID, 0, c.Len())
	for _, e := range c.Entities {
		out = append(out, e.ID)
	}
	return out
}

func TestRetrieveMultiple_QueryExpressionOperators(t *testing.T) {
	tests := []struct {
		name   string
		filter *core.FilterExpression
		want   []uuid.UUID
	}{
		{"no criteria", nil, []uuid.UUID{c1, c2, c3}},
		{"equal string ignores case", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorEqual, "smith"), []uuid.UUID{c1}},
		{"equal option set against int", core.NewFilter(core.LogicalAnd).AddCondition("statecode", core.OperatorEqual, 1), []uuid.UUID{c2}},
		{"equal reference against uuid", core.NewFilter(core.LogicalAnd).AddCondition("ownerid", core.OperatorEqual, ownerID), []uuid.UUID{c1}},
		{"not equal skips missing", core.NewFilter(core.LogicalAnd).AddCondition("emailaddress1", core.OperatorNotEqual, "john@contoso.com"), []uuid.UUID{c3}},
		{"null", core.NewFilter(core.LogicalAnd).AddCondition("emailaddress1", core.OperatorNull), []uuid.UUID{c2}},
		{"not null", core.NewFilter(core.LogicalAnd).AddCondition("emailaddress1", core.OperatorNotNull), []uuid.UUID{c1, c3}},
		{"in", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorIn, "Jones", "Smythe"), []uuid.UUID{c2, c3}},
		{"in with slice", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorIn, []string{"Jones"}), []uuid.UUID{c2}},
		{"not in", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorNotIn, "Jones"), []uuid.UUID{c1, c3}},
		{"like", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorLike, "sm%"), []uuid.UUID{c1, c3}},
		{"like single char", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorLike, "Sm_th"), []uuid.UUID{c1}},
		{"not like", core.NewFilter(core.LogicalAnd).AddCondition("lastname", core.OperatorNotLike, "%th%"), []uuid.UUID{c2}},
		{"begins with", core.NewFilter(core.LogicalAnd).AddCondition("emailaddress1", core.OperatorBeginsWith, "ANN"), []uuid.UUID{c3}},
		{"ends with", core.NewFilter(core.LogicalAnd).AddCondition("emailaddress1", core.OperatorEndsWith, "contoso.com"), []uuid.UUID{c1}},
		{"greater than", core.NewFilter(core.LogicalAnd).AddCondition("numberofchildren", core.OperatorGreaterThan, 0), []uuid.UUID{c1, c3}},
		{"greater equal", core.NewFilter(core.LogicalAnd).AddCondition("numberofchildren", core.OperatorGreaterEqual, 2), []uuid.UUID{c1, c3}},
		{"less than", core.NewFilter(core.LogicalAnd).AddCondition("numberofchildren", core.OperatorLessThan, 2), []uuid.UUID{c2}},
		{"less equal float", core.NewFilter(core.LogicalAnd).AddCondition("numberofchildren", core.OperatorLessEqual, 2.0), []uuid.UUID{c1, c2}},
		{"date before", core.NewFilter(core.LogicalAnd).AddCondition("birthdate", core.OperatorLessThan, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)), []uuid.UUID{c1}},
		{"and", core.NewFilter(core.LogicalAnd).
			AddCondition("statecode", core.OperatorEqual, 0).
			AddCondition("numberofchildren", core.OperatorGreaterThan, 3), []uuid.UUID{c3}},
		{"or", core.NewFilter(core.LogicalOr).
			AddCondition("lastname", core.OperatorEqual, "Jones").
			AddCondition("numberofchildren", core.OperatorEqual, 5), []uuid.UUID{c2, c3}},
		{"nested", core.NewFilter(core.LogicalAnd).
			AddCondition("statecode", core.OperatorEqual, 0).
			AddFilter(core.NewFilter(core.LogicalOr).
				AddCondition("lastname", core.OperatorEqual, "Smith").
				AddCondition("emailaddress1", core.OperatorNull)), []uuid.UUID{c1}},
		{"empty or", core.NewFilter(core.LogicalOr), []uuid.UUID{c1, c2, c3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := queryService()
			q := core.NewQueryExpression("contact")
			q.Criteria = tt.filter

			got, err := svc.RetrieveMultiple(context.Background(), q)
			require.NoError(t, err)
			assert.Equal(t, "contact", got.EntityName)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRetrieveMultiple_QueryExpressionErrors(t *testing.T) {
	svc := queryService()

	q := core.NewQueryExpression("contact")
	q.Criteria.AddCondition("lastname", core.OperatorEqual, "a", "b")
	_, err := svc.RetrieveMultiple(context.Background(), q)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	q = core.NewQueryExpression("contact")
	q.Criteria.AddCondition("lastname", core.ConditionOperator("Soundex"), "smith")
	_, err = svc.RetrieveMultiple(context.Background(), q)
	assert.ErrorIs(t, err, core.ErrNotImplemented)

	q = core.NewQueryExpression("contact")
	q.Criteria.AddCondition("lastname", core.OperatorLike, 42)
	_, err = svc.RetrieveMultiple(context.Background(), q)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)
}

func TestRetrieveMultiple_TopCount(t *testing.T) {
	svc := queryService()
	q := core.NewQueryExpression("contact")
	q.TopCount = 2

	got, err := svc.RetrieveMultiple(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c1, c2}, ids(got))
	assert.True(t, got.MoreRecords)
}

func TestRetrieveMultiple_ExcludesDeletedAndCopies(t *testing.T) {
	svc := queryService()
	require.NoError(t, svc.Delete(context.Background(), "contact", c2))

	got, err := svc.RetrieveMultiple(context.Background(), core.NewQueryExpression("contact"))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c1, c3}, ids(got))

	got.Entities[0].Set("lastname", "Changed")
	again, err := svc.RetrieveMultiple(context.Background(), core.NewQueryExpression("contact"))
	require.NoError(t, err)
	assert.Equal(t, "Smith", again.Entities[0].Attributes["lastname"])
}

func TestRetrieveMultiple_Trace(t *testing.T) {
	var out bytes.Buffer
	svc := NewFakeService(func(o *Options) {
		o.Output = &out
		o.Entities = contacts()
	})

	q := core.NewQueryByAttribute("account").AddAttributeValue("name", "Contoso")
	_, err := svc.RetrieveMultiple(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, "=== Retrieve entity collection by QueryByAttribute ===\n\n"+
		"EntityName = account\n"+
		"ColumnSet = All\n"+
		"Criteria\n"+
		"\tname = Contoso\n"+
		"Retrieved 1 entities\n\n"+
		"LogicalName = account\n"+
		"ID = 11111111-1111-1111-1111-111111111111\n"+
		"name = Contoso\n", out.String())
}

func TestRetrieveMultiple_QueryByAttribute(t *testing.T) {
	svc := queryService()

	q := core.NewQueryByAttribute("contact").
		AddAttributeValue("statecode", core.NewOptionSetValue(0)).
		AddAttributeValue("lastname", "SMYTHE")
	got, err := svc.RetrieveMultiple(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c3}, ids(got))

	// Every pair has to match, and a record is returned once.
	q = core.NewQueryByAttribute("contact").
		AddAttributeValue("statecode", 0).
		AddAttributeValue("statecode", 0)
	got, err = svc.RetrieveMultiple(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c1, c3}, ids(got))

	_, err = svc.RetrieveMultiple(context.Background(), &core.QueryByAttribute{
		EntityName: "contact",
		Attributes: []string{"lastname"},
	})
	assert.ErrorIs(t, err, core.ErrInvalidQuery)
}

func TestRetrieveMultiple_FetchExpression(t *testing.T) {
	svc := queryService()

	fetch := func(xml string) []uuid.UUID {
		t.Helper()
		got, err := svc.RetrieveMultiple(context.Background(), core.NewFetchExpression(xml))
		require.NoError(t, err)
		return ids(got)
	}

	assert.Equal(t, []uuid.UUID{c1, c2, c3}, fetch(`<fetch><entity name="contact"><attribute name="lastname"/></entity></fetch>`))
	assert.Equal(t, []uuid.UUID{accountID}, fetch(`<fetch mapping="logical"><entity name="account"><all-attributes/></entity></fetch>`))
	assert.Equal(t, []uuid.UUID{c1}, fetch(`<fetch count="1"><entity name="contact"/></fetch>`))
	assert.Equal(t, []uuid.UUID{c1, c2}, fetch(`<fetch top="2"><entity name="contact"/></fetch>`))

	assert.Equal(t, []uuid.UUID{c3}, fetch(`
		<fetch>
		  <entity name="contact">
		    <filter type="and">
		      <condition attribute="statecode" operator="eq" value="0"/>
		      <condition attribute="numberofchildren" operator="gt" value="3"/>
		    </filter>
		  </entity>
		</fetch>`))

	assert.Equal(t, []uuid.UUID{c1, c2}, fetch(`
		<fetch>
		  <entity name="contact">
		    <filter type="or">
		      <condition attribute="lastname" operator="in">
		        <value>Jones</value>
		        <value>Smith</value>
		      </condition>
		      <filter>
		        <condition attribute="ownerid" operator="eq" value="{33333333-3333-3333-3333-333333333333}"/>
		      </filter>
		    </filter>
		  </entity>
		</fetch>`))

	assert.Equal(t, []uuid.UUID{c2}, fetch(`<fetch><entity name="contact"><filter>
		<condition attribute="donotemail" operator="eq" value="1"/>
	</filter></entity></fetch>`))

	assert.Equal(t, []uuid.UUID{c1, c3}, fetch(`<fetch><entity name="contact"><filter>
		<condition attribute="lastname" operator="like" value="Sm%"/>
		<condition attribute="emailaddress1" operator="not-null"/>
	</filter></entity></fetch>`))
}

func TestRetrieveMultiple_FetchExpressionErrors(t *testing.T) {
	svc := queryService()

	for _, q := range []string{
		`<fetch><entity name="contact">`,
		`<fetch><entity/></fetch>`,
		`<fetch/>`,
		`<fetch count="many"><entity name="contact"/></fetch>`,
		`<fetch><entity name="contact"><filter type="xor"/></entity></fetch>`,
	} {
		_, err := svc.RetrieveMultiple(context.Background(), core.NewFetchExpression(q))
		assert.ErrorIs(t, err, core.ErrInvalidQuery, q)
		assert.Contains(t, err.Error(), "invalid FetchXML query", q)
	}

	_, err := svc.RetrieveMultiple(context.Background(), core.NewFetchExpression(
		`<fetch><entity name="contact"><filter><condition attribute="createdon" operator="last-x-days" value="3"/></filter></entity></fetch>`))
	assert.ErrorIs(t, err, core.ErrNotImplemented)
}

type savedQuery struct{}

func (savedQuery) QueryName() string { return "SavedQuery" }

func TestRetrieveMultiple_UnsupportedQuery(t *testing.T) {
	svc := queryService()

	_, err := svc.RetrieveMultiple(context.Background(), savedQuery{})
	assert.ErrorIs(t, err, core.ErrNotImplemented)

	_, err = svc.RetrieveMultiple(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)
}

func TestLikePattern(t *testing.T) {
	re, err := likePattern("a.b%")
	require.NoError(t, err)
	assert.True(t, re.MatchString("A.Bcd"))
	assert.False(t, re.MatchString("axbcd"))
}
