// Package plaintext renders entities, references, queries and requests as
// human-readable text for trace output. Every function returns text without
// a trailing newline so callers can compose blocks freely.
package plaintext

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
)

const nestedIndent = "    "

// Entity renders the logical name, the id and every attribute in key order.
//
//	LogicalName = account
//	ID = 6f1c...
//	name = Contoso
//	primarycontactid = contact | 9a3e... | John Smith
//	statuscode = 1 | Active
func Entity(e *core.Entity) string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "LogicalName = %s\n", e.LogicalName)
	fmt.Fprintf(&sb, "ID = %s\n", e.ID)
	for _, key := range e.Keys() {
		writeAttribute(&sb, e, key, e.Attributes[key])
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}

func writeAttribute(sb *strings.Builder, e *core.Entity, key string, value any) {
	switch v := value.(type) {
	case core.EntityReference:
		fmt.Fprintf(sb, "%s = %s\n", key, Reference(v))
	case *core.EntityReference:
		if v == nil {
			fmt.Fprintf(sb, "%s = \n", key)
			return
		}
		fmt.Fprintf(sb, "%s = %s\n", key, Reference(*v))
	case core.OptionSetValue:
		fmt.Fprintf(sb, "%s = %d | %s\n", key, v.Value, e.FormattedValue(key))
	case *core.EntityCollection:
		fmt.Fprintf(sb, "%s =>\n", key)
		if v == nil {
			return
		}
		for _, nested := range v.Entities {
			sb.WriteString(indent(Entity(nested), nestedIndent))
			sb.WriteString("\n")
		}
	case *core.Entity:
		fmt.Fprintf(sb, "%s =>\n", key)
		sb.WriteString(indent(Entity(v), nestedIndent))
		sb.WriteString("\n")
	case core.Money:
		fmt.Fprintf(sb, "%s = %s\n", key, v.Value.String())
	case core.AliasedValue:
		writeAttribute(sb, e, key, v.Value)
	default:
		fmt.Fprintf(sb, "%s = %s\n", key, Value(v))
	}
}

// Value renders a scalar attribute value. nil renders as an empty string.
func Value(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case uuid.UUID:
		return tv.String()
	case time.Time:
		return tv.Format(time.RFC3339)
	case core.EntityReference:
		return Reference(tv)
	case core.OptionSetValue:
		return fmt.Sprintf("%d", tv.Value)
	case core.Money:
		return tv.Value.String()
	case core.AliasedValue:
		return Value(tv.Value)
	case []any:
		parts := make([]string, len(tv))
		for i, item := range tv {
			parts[i] = Value(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", tv)
	}
}

// Reference renders a reference on one line: "logicalname | id | name".
func Reference(ref core.EntityReference) string {
	return fmt.Sprintf("%s | %s | %s", ref.LogicalName, ref.ID, ref.Name)
}

// ReferenceText renders a reference as three lines, each prefixed with
// indent spaces.
func ReferenceText(ref core.EntityReference, indent int) string {
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sLogicalName = %s\n", pad, ref.LogicalName)
	fmt.Fprintf(&sb, "%sID = %s\n", pad, ref.ID)
	fmt.Fprintf(&sb, "%sName = %s\n", pad, ref.Name)
	return strings.TrimRight(sb.String(), " \t\r\n")
}

// ColumnSet renders "ColumnSet = All" or the comma separated column names.
func ColumnSet(cs core.ColumnSet) string {
	if cs.AllColumns {
		return "ColumnSet = All"
	}
	return "ColumnSet = " + strings.Join(cs.Columns, ", ")
}

func indent(text, prefix string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
