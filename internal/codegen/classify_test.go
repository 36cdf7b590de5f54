package codegen

import (
	"testing"

	"github.com/rpattn/filtergen/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typeName string
		want     domain.ValueCategory
	}{
		{"string", domain.Text()},
		{"*string", domain.Text()},
		{"**string", domain.Text()},
		{"uuid.UUID", domain.Identifier()},
		{"*uuid.UUID", domain.Identifier()},
		{"github.com/google/uuid.UUID", domain.Identifier()},
		{"int64", domain.Foreign("int64")},
		{"*time.Time", domain.Foreign("time.Time")},
		{"Status", domain.Foreign("Status")},
		{"* string", domain.Text()},
	}

	for _, tt := range tests {
		if got := Classify(tt.typeName); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.typeName, got, tt.want)
		}
	}
}

func TestClassify_OptionalDoesNotChangeCategory(t *testing.T) {
	for _, base := range []string{"string", "uuid.UUID", "decimal.Decimal"} {
		if Classify(base) != Classify("*"+base) {
			t.Fatalf("expected %s and *%s to share a category", base, base)
		}
	}
}

func TestClassifyIn_ResolvesQualifierThroughImports(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		imports  []domain.Import
		want     domain.ValueCategory
	}{
		{"aliased uuid", "guuid.UUID", []domain.Import{{Name: "guuid", Path: uuidImportPath}}, domain.Identifier()},
		{"optional aliased uuid", "*guuid.UUID", []domain.Import{{Name: "guuid", Path: uuidImportPath}}, domain.Identifier()},
		{"plain uuid import", "uuid.UUID", []domain.Import{{Path: uuidImportPath}}, domain.Identifier()},
		{"other uuid package", "uuid.UUID", []domain.Import{{Path: "github.com/gofrs/uuid"}}, domain.Foreign("uuid.UUID")},
		{"unbound alias", "guuid.UUID", nil, domain.Foreign("guuid.UUID")},
		{"no imports", "uuid.UUID", nil, domain.Identifier()},
		{"text ignores imports", "string", []domain.Import{{Path: uuidImportPath}}, domain.Text()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIn(tt.typeName, tt.imports); got != tt.want {
				t.Fatalf("ClassifyIn(%q) = %v, want %v", tt.typeName, got, tt.want)
			}
		})
	}
}
