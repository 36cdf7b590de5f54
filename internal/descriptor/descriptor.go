// Package descriptor reads record descriptions from YAML files.
package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/internal/domain"
)

// File is the on-disk shape of a descriptor.
//
//	record: User
//	table: users
//	pagination: true
//	imports:
//	  - path: github.com/google/uuid
//	fields:
//	  - name: ID
//	    type: uuid.UUID
//	    filter: true
//	  - name: Name
//	    type: string
//	    filter: [substring, insensitive]
type File struct {
	Record     string          `yaml:"record"`
	Table      string          `yaml:"table"`
	Pagination bool            `yaml:"pagination"`
	Package    string          `yaml:"package"`
	Imports    []domain.Import `yaml:"imports"`
	Fields     []Field         `yaml:"fields"`
}

// Field is one declared record field.
type Field struct {
	Name   string     `yaml:"name"`
	Type   string     `yaml:"type"`
	Column string     `yaml:"column"`
	Filter Annotation `yaml:"filter"`
}

// Annotation is a field's filter marker. It accepts a list of keywords, a
// comma separated string, or a boolean where true is a bare marker.
type Annotation struct {
	Tokens []string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Annotation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		tokens := []string{}
		if err := node.Decode(&tokens); err != nil {
			return fmt.Errorf("line %d: filter keywords must be strings: %w", node.Line, err)
		}
		a.Tokens = tokens
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			var marked bool
			if err := node.Decode(&marked); err != nil {
				return err
			}
			if marked {
				a.Tokens = []string{}
			} else {
				a.Tokens = nil
			}
			return nil
		}
		if node.Tag == "!!null" {
			a.Tokens = nil
			return nil
		}
		a.Tokens = codegen.ParseTokens(node.Value)
		return nil
	}
	return fmt.Errorf("line %d: filter must be a list, a string or a boolean", node.Line)
}

// Load reads and parses the descriptor at path.
func Load(path string) (domain.RecordSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RecordSource{}, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}
	src, err := Parse(data)
	if err != nil {
		return domain.RecordSource{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// Parse decodes a descriptor. Unknown keys are rejected.
func Parse(data []byte) (domain.RecordSource, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.RecordSource{}, errors.New("descriptor is empty")
		}
		return domain.RecordSource{}, fmt.Errorf("failed to parse descriptor: %w", err)
	}
	return file.Source()
}

// Source converts the file into the generator's input.
func (f File) Source() (domain.RecordSource, error) {
	if strings.TrimSpace(f.Record) == "" {
		return domain.RecordSource{}, errors.New("descriptor must name a record")
	}

	src := domain.RecordSource{
		RecordName:  strings.TrimSpace(f.Record),
		StorageName: strings.TrimSpace(f.Table),
		Pagination:  f.Pagination,
		Package:     f.Package,
		Imports:     f.Imports,
	}

	seen := make(map[string]bool, len(f.Fields))
	for i, field := range f.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return domain.RecordSource{}, fmt.Errorf("field %d of %s has no name", i+1, src.RecordName)
		}
		if seen[name] {
			return domain.RecordSource{}, fmt.Errorf("field %s of %s is declared twice", name, src.RecordName)
		}
		seen[name] = true

		src.Fields = append(src.Fields, domain.SourceField{
			Name:   name,
			Column: strings.TrimSpace(field.Column),
			Type:   strings.TrimSpace(field.Type),
			Filter: field.Filter.Tokens,
		})
	}

	return src, nil
}
