package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the db-tagged exported fields of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValues(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

// UpsertModel inserts model and, on a conflict over conflictColumns, overwrites every
// other column with the incoming value.
func UpsertModel(table string, model any, conflictColumns ...string) (string, []any, error) {
	if len(conflictColumns) == 0 {
		return "", nil, fmt.Errorf("upsert conflict columns are required")
	}
	cols, vals, err := columnsAndValues(model)
	if err != nil {
		return "", nil, err
	}

	isKey := make(map[string]bool, len(conflictColumns))
	for _, c := range conflictColumns {
		isKey[c] = true
	}
	sets := make([]string, 0, len(cols))
	for _, c := range cols {
		if !isKey[c] {
			sets = append(sets, c+" = EXCLUDED."+c)
		}
	}

	suffix := "ON CONFLICT (" + strings.Join(conflictColumns, ", ") + ") DO NOTHING"
	if len(sets) > 0 {
		suffix = "ON CONFLICT (" + strings.Join(conflictColumns, ", ") + ") DO UPDATE SET " + strings.Join(sets, ", ")
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

func columnsAndValues(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
