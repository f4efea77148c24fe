package querybuilder

import "strings"

// Condition renders one predicate of a WHERE clause, appending its bind arguments.
type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition  { return compareCondition{column, "=", value} }
func Gte(column string, value any) Condition { return compareCondition{column, ">=", value} }

func (c compareCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteByte(' ')
	buf.WriteString(c.op)
	buf.WriteByte(' ')
	bind(buf, args, argIndex, c.value)
}

type anyCondition struct {
	column string
	array  any
}

// Any matches column against a postgres array argument, e.g. one built with pq.Array.
func Any(column string, array any) Condition {
	return anyCondition{column: column, array: array}
}

func (c anyCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" = ANY(")
	bind(buf, args, argIndex, c.array)
	buf.WriteByte(')')
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) appendSQL(buf *strings.Builder, _ *[]any, _ *int) {
	buf.WriteString(c.column)
	buf.WriteString(" IS NULL")
}

func appendWhereClause(buf *strings.Builder, conditions []Condition, args *[]any, argIndex *int) {
	for i, c := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.appendSQL(buf, args, argIndex)
	}
}
