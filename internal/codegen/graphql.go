package codegen

import (
	"bytes"
	"sort"
	"strings"
	"unicode"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/rpattn/filtergen/internal/domain"
)

var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

var goScalars = map[string]string{
	"int":     "Int",
	"int8":    "Int",
	"int16":   "Int",
	"int32":   "Int",
	"int64":   "Int",
	"uint":    "Int",
	"uint8":   "Int",
	"uint16":  "Int",
	"uint32":  "Int",
	"uint64":  "Int",
	"float32": "Float",
	"float64": "Float",
	"bool":    "Boolean",
}

// EmitGraphQL renders the Filter Input as a GraphQL input object so gqlgen
// can bind it to the generated Go type. Custom scalars the input references
// are declared alongside it.
func EmitGraphQL(shape domain.InputShape) []byte {
	def := &ast.Definition{
		Kind:        ast.InputObject,
		Name:        shape.Name,
		Description: "Optional filter values. An omitted field places no constraint.",
	}

	custom := map[string]bool{}
	for _, m := range shape.Members {
		scalar := GraphQLScalar(m)
		if !builtinScalars[scalar] {
			custom[scalar] = true
		}

		var typ *ast.Type
		if m.Multiple {
			typ = ast.ListType(ast.NonNullNamedType(scalar, nil), nil)
		} else {
			typ = ast.NamedType(scalar, nil)
		}
		def.Fields = append(def.Fields, &ast.FieldDefinition{Name: m.Key, Type: typ})
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &ast.SchemaDocument{}
	for _, name := range names {
		doc.Definitions = append(doc.Definitions, &ast.Definition{Kind: ast.Scalar, Name: name})
	}
	doc.Definitions = append(doc.Definitions, def)

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.Bytes()
}

// GraphQLScalar names the GraphQL type of one Filter Input member's values.
func GraphQLScalar(m domain.InputMember) string {
	if m.Pagination {
		return "Int"
	}
	switch m.Category.Kind {
	case domain.CategoryText:
		return "String"
	case domain.CategoryIdentifier:
		return "UUID"
	}

	name := m.Category.Foreign
	if scalar, ok := goScalars[name]; ok {
		return scalar
	}
	if idx := strings.Index(name, "["); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return exportedName(name)
}

func exportedName(name string) string {
	runes := []rune(name)
	out := runes[:0]
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "String"
	}
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}
