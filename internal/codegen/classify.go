package codegen

import (
	"strings"

	"github.com/rpattn/filtergen/internal/domain"
)

const uuidImportPath = "github.com/google/uuid"

// Classify maps a declared Go type to its filterable value category. Leading
// pointer decorations mark the field optional and do not change the
// category. Unrecognised types always succeed as Foreign.
func Classify(typeName string) domain.ValueCategory {
	t := stripOptional(typeName)
	switch t {
	case "string":
		return domain.Text()
	case "uuid.UUID", uuidImportPath + ".UUID":
		return domain.Identifier()
	}
	return domain.Foreign(t)
}

// ClassifyIn is Classify with the record file's imports in scope. A UUID
// whose qualifier is bound to github.com/google/uuid under any name is an
// Identifier; a uuid qualifier bound to another package stays Foreign.
func ClassifyIn(typeName string, imports []domain.Import) domain.ValueCategory {
	t := stripOptional(typeName)
	qualifier, name, ok := strings.Cut(t, ".")
	if !ok || name != "UUID" {
		return Classify(typeName)
	}
	imp, found := matchImport(imports, qualifier)
	switch {
	case !found:
		return Classify(typeName)
	case imp.Path == uuidImportPath:
		return domain.Identifier()
	default:
		return domain.Foreign(t)
	}
}

func stripOptional(typeName string) string {
	t := strings.Join(strings.Fields(typeName), "")
	return strings.TrimLeft(t, "*")
}
