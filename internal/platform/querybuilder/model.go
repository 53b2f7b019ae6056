package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// InsertModel builds an INSERT from the db-tagged exported fields of model.
func InsertModel(table string, model any, returning ...string) (string, []any, error) {
	value, err := structValue(model)
	if err != nil {
		return "", nil, err
	}

	fields := dbFields(value.Type())
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("model %s has no db columns", value.Type())
	}

	cols := make([]string, len(fields))
	vals := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = f.column
		vals[i] = value.Field(f.index).Interface()
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Returning(returning...).
		ToSQL()
}

type dbField struct {
	column string
	index  int
}

var fieldCache sync.Map // reflect.Type -> []dbField

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}
	return value, nil
}

func dbFields(typ reflect.Type) []dbField {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.([]dbField)
	}

	fields := make([]dbField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		fields = append(fields, dbField{column: column, index: i})
	}

	fieldCache.Store(typ, fields)
	return fields
}
