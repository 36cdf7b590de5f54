package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/rpattn/filtergen/internal/domain"
)

// userSource is the record most tests compile: a paginated users table
// filterable by name, tags and id.
func userSource() domain.RecordSource {
	return domain.RecordSource{
		RecordName:  "User",
		StorageName: "users",
		Pagination:  true,
		Package:     "models",
		Fields: []domain.SourceField{
			{Name: "ID", Type: "uuid.UUID", Filter: []string{}},
			{Name: "Name", Type: "string", Filter: []string{"substring", "insensitive"}},
			{Name: "Tags", Type: "string", Filter: []string{"multiple"}},
			{Name: "Email", Type: "*string"},
		},
		Imports: []domain.Import{{Path: "github.com/google/uuid"}},
	}
}

func mustCollect(t *testing.T, src domain.RecordSource) domain.RecordDescriptor {
	t.Helper()
	desc, err := Collect(src)
	if err != nil {
		t.Fatalf("collect %s: %v", src.RecordName, err)
	}
	return desc
}

func parseGenerated(t *testing.T, src []byte) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	return file
}

func findFunc(file *ast.File, name string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == name {
			return fn
		}
	}
	return nil
}

func findStruct(file *ast.File, name string) *ast.StructType {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if ts.Name.Name != name {
				continue
			}
			if st, ok := ts.Type.(*ast.StructType); ok {
				return st
			}
		}
	}
	return nil
}

func importPaths(file *ast.File) []string {
	paths := make([]string, len(file.Imports))
	for i, imp := range file.Imports {
		paths[i] = imp.Path.Value[1 : len(imp.Path.Value)-1]
	}
	return paths
}
