package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type join struct {
	kind  string
	table string
	on    string
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []join
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Join(table, on string) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "JOIN", table: table, on: on})
	return b
}

func (b *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "LEFT JOIN", table: table, on: on})
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// WhereIf adds the condition only when ok is true, for optional filters.
func (b *SelectBuilder) WhereIf(ok bool, condition Condition) *SelectBuilder {
	if ok {
		b.where = append(b.where, condition)
	}
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	for _, j := range b.joins {
		if strings.TrimSpace(j.on) == "" {
			return "", nil, fmt.Errorf("join %s requires an ON clause", j.table)
		}
		fmt.Fprintf(&buf, " %s %s ON %s", j.kind, j.table, j.on)
	}

	args := make([]any, 0, len(b.where))
	argIndex := 1
	appendWhereClause(&buf, b.where, &args, &argIndex)
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}
