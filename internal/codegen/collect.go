package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/rpattn/filtergen/internal/domain"
)

// Collect validates a record source and builds its descriptor: every
// annotated field is classified and interpreted, in declaration order, and
// every declared field becomes a selected column.
func Collect(src domain.RecordSource) (domain.RecordDescriptor, error) {
	record := strings.TrimSpace(src.RecordName)
	if record == "" {
		return domain.RecordDescriptor{}, errors.New("record name is required")
	}

	storage := strings.TrimSpace(src.StorageName)
	if storage == "" {
		return domain.RecordDescriptor{}, &domain.GenerationError{
			Kind:   domain.ErrMissingStorage,
			Record: record,
			Msg:    "declare the backing table",
		}
	}

	desc := domain.RecordDescriptor{
		RecordName:  record,
		StorageName: storage,
		Pagination:  src.Pagination,
		Package:     src.Package,
		Imports:     append([]domain.Import(nil), src.Imports...),
	}

	for _, field := range src.Fields {
		column := strings.TrimSpace(field.Column)
		if column == "" {
			column = SnakeCase(field.Name)
		}
		desc.Columns = append(desc.Columns, domain.Column{Field: field.Name, Column: column})

		if !field.Annotated() {
			continue
		}

		category := ClassifyIn(field.Type, src.Imports)
		if category.Kind == domain.CategoryForeign {
			if err := checkTypePath(category.Foreign); err != nil {
				return domain.RecordDescriptor{}, &domain.GenerationError{
					Kind:   domain.ErrMalformedType,
					Record: record,
					Field:  field.Name,
					Msg:    err.Error(),
				}
			}
		}

		desc.Fields = append(desc.Fields, domain.FilterField{
			Name:     field.Name,
			Column:   column,
			Category: category,
			Opts:     Interpret(field.Filter),
		})
	}

	if len(desc.Fields) == 0 {
		return domain.RecordDescriptor{}, &domain.GenerationError{
			Kind:   domain.ErrNoFilterFields,
			Record: record,
			Msg:    "annotate at least one field with a filter",
		}
	}

	return desc, nil
}

// checkTypePath accepts named types, optionally package qualified and
// optionally instantiated with type arguments.
func checkTypePath(typeName string) error {
	if typeName == "" {
		return errors.New("declared type is empty")
	}
	expr, err := parser.ParseExpr(typeName)
	if err != nil {
		return fmt.Errorf("cannot parse type %q", typeName)
	}
	if !isTypePath(expr) {
		return fmt.Errorf("type %q is not a named type", typeName)
	}
	return nil
}

func isTypePath(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypePath(e.X)
	case *ast.IndexExpr:
		return isTypePath(e.X)
	case *ast.IndexListExpr:
		return isTypePath(e.X)
	default:
		return false
	}
}

// SnakeCase converts a Go identifier such as UserID or HTTPServer into its
// default column name, user_id or http_server. Digits start a new word, so
// Address2 becomes address_2.
func SnakeCase(name string) string {
	return strcase.ToSnake(name)
}
