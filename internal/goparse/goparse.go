// Package goparse reads a record description from a Go struct declaration.
//
// A field opts into filtering with a filter tag whose value lists keywords,
// for example `filter:"substring,insensitive"`; an empty value is a bare
// marker. The db tag names the column, and db:"-" drops the field. The
// struct's doc comment carries record level directives:
//
//	// User is an account.
//	//filtergen:table=users
//	//filtergen:pagination
//	type User struct { ... }
package goparse

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/internal/domain"
)

const directivePrefix = "filtergen:"

// ParseFile reads the struct typeName from the Go file at path.
func ParseFile(path, typeName string) (domain.RecordSource, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return domain.RecordSource{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, src, typeName)
}

// Parse reads the struct typeName from src.
func Parse(filename string, src []byte, typeName string) (domain.RecordSource, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return domain.RecordSource{}, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	spec, doc := findType(file, typeName)
	if spec == nil {
		return domain.RecordSource{}, fmt.Errorf("type %s not found in %s", typeName, filename)
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return domain.RecordSource{}, fmt.Errorf("type %s in %s is not a struct", typeName, filename)
	}

	out := domain.RecordSource{
		RecordName: typeName,
		Package:    file.Name.Name,
		Imports:    fileImports(file),
	}
	if err := applyDirectives(&out, doc); err != nil {
		return domain.RecordSource{}, fmt.Errorf("%s: %w", fset.Position(spec.Pos()), err)
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		tag, err := fieldTag(field)
		if err != nil {
			return domain.RecordSource{}, fmt.Errorf("%s: %w", fset.Position(field.Pos()), err)
		}

		column, _, _ := strings.Cut(tag.Get("db"), ",")
		if column == "-" {
			continue
		}

		var filter []string
		if value, ok := tag.Lookup("filter"); ok {
			filter = codegen.ParseTokens(value)
		}

		declared := types.ExprString(field.Type)
		for _, name := range field.Names {
			out.Fields = append(out.Fields, domain.SourceField{
				Name:   name.Name,
				Column: column,
				Type:   declared,
				Filter: filter,
			})
		}
	}

	return out, nil
}

func findType(file *ast.File, name string) (*ast.TypeSpec, *ast.CommentGroup) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, s := range gen.Specs {
			ts := s.(*ast.TypeSpec)
			if ts.Name.Name != name {
				continue
			}
			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			return ts, doc
		}
	}
	return nil, nil
}

func applyDirectives(out *domain.RecordSource, doc *ast.CommentGroup) error {
	if doc == nil {
		return nil
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if !strings.HasPrefix(text, directivePrefix) {
			continue
		}
		key, value, _ := strings.Cut(strings.TrimPrefix(text, directivePrefix), "=")
		switch strings.TrimSpace(key) {
		case "table":
			out.StorageName = strings.TrimSpace(value)
		case "pagination":
			out.Pagination = true
			if v := strings.TrimSpace(value); v != "" {
				enabled, err := strconv.ParseBool(v)
				if err != nil {
					return fmt.Errorf("invalid pagination directive %q", text)
				}
				out.Pagination = enabled
			}
		default:
			return fmt.Errorf("unknown directive %q", text)
		}
	}
	return nil
}

func fieldTag(field *ast.Field) (reflect.StructTag, error) {
	if field.Tag == nil {
		return "", nil
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("invalid struct tag %s", field.Tag.Value)
	}
	return reflect.StructTag(raw), nil
}

func fileImports(file *ast.File) []domain.Import {
	var imports []domain.Import
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imp := domain.Import{Path: path}
		if spec.Name != nil {
			if spec.Name.Name == "_" || spec.Name.Name == "." {
				continue
			}
			imp.Name = spec.Name.Name
		}
		imports = append(imports, imp)
	}
	return imports
}
