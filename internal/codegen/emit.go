package codegen

import (
	"bytes"
	_ "embed"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"

	"github.com/rpattn/filtergen/internal/domain"
	"github.com/rpattn/filtergen/pkg/filterquery"
)

// DefaultRuntimeImport is the import path generated code links against.
const DefaultRuntimeImport = "github.com/rpattn/filtergen/pkg/filterquery"

//go:embed templates/filters.go.tmpl
var filtersTemplate string

var tmpl = template.Must(template.New("filters").Parse(filtersTemplate))

// BindingStyle selects how the Filter Input is made constructible from an
// external key/value map.
type BindingStyle string

const (
	BindingNone    BindingStyle = "none"
	BindingJSON    BindingStyle = "json"
	BindingForm    BindingStyle = "form"
	BindingGraphQL BindingStyle = "graphql"
)

// ParseBindingStyle validates a binding style name. The empty name is json.
func ParseBindingStyle(name string) (BindingStyle, error) {
	switch style := BindingStyle(strings.ToLower(strings.TrimSpace(name))); style {
	case "":
		return BindingJSON, nil
	case BindingNone, BindingJSON, BindingForm, BindingGraphQL:
		return style, nil
	}
	return "", fmt.Errorf("unknown binding style %q", name)
}

// Options controls how generated code is emitted.
type Options struct {
	// Package overrides the package clause. Defaults to the record's package,
	// then DefaultPackage.
	Package        string
	Binding        BindingStyle
	Dialect        filterquery.Dialect
	DefaultPerPage int64
	RuntimeImport  string
	// Filename is used when resolving imports for the formatted file.
	Filename string
}

// DefaultPackage is used when neither the options nor the record name one.
const DefaultPackage = "models"

func (o Options) withDefaults(desc domain.RecordDescriptor) Options {
	if o.Package == "" {
		o.Package = desc.Package
	}
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.Binding == "" {
		o.Binding = BindingJSON
	}
	if o.DefaultPerPage <= 0 {
		o.DefaultPerPage = filterquery.DefaultPerPage
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = DefaultRuntimeImport
	}
	if o.Filename == "" {
		o.Filename = SnakeCase(desc.RecordName) + "_filters.go"
	}
	return o
}

type memberData struct {
	Name   string
	GoType string
	Tag    string
}

type templateData struct {
	Package      string
	Record       string
	Lower        string
	Storage      string
	Shape        string
	Members      []memberData
	Rules        []domain.PredicateRule
	Columns      []domain.Column
	Pagination   bool
	PerPage      int64
	Dialect      string
	Conn         string
	Load         string
	LoadAndCount string
	Form         bool
	StdImports   []domain.Import
	ExtImports   []domain.Import
}

// Emit renders the generated Go source for one record: the Filter Input type,
// Filter<Record>, Filtered<Record> and the row scanner. The output is
// gofmt-formatted and deterministic for a given input.
func Emit(desc domain.RecordDescriptor, shape domain.InputShape, rules []domain.PredicateRule, opts Options) ([]byte, error) {
	opts = opts.withDefaults(desc)

	data := templateData{
		Package:    opts.Package,
		Record:     desc.RecordName,
		Lower:      strcase.ToLowerCamel(desc.RecordName),
		Storage:    desc.StorageName,
		Shape:      shape.Name,
		Rules:      rules,
		Columns:    desc.Columns,
		Pagination: desc.Pagination,
		PerPage:    opts.DefaultPerPage,
		Dialect:    opts.Dialect.GoName(),
		Form:       opts.Binding == BindingForm,
	}

	if opts.Dialect == filterquery.SQLite {
		data.Conn = "filterquery.SQLDB"
		data.Load, data.LoadAndCount = "LoadSQL", "LoadAndCountSQL"
	} else {
		data.Conn = "filterquery.DBTX"
		data.Load, data.LoadAndCount = "Load", "LoadAndCount"
	}

	for _, m := range shape.Members {
		data.Members = append(data.Members, memberData{
			Name:   m.Name,
			GoType: m.GoType(),
			Tag:    structTag(opts.Binding, m.Key),
		})
	}

	data.StdImports, data.ExtImports = generatedImports(desc, shape, opts)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render filters for %s: %w", desc.RecordName, err)
	}

	out, err := imports.Process(opts.Filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format filters for %s: %w", desc.RecordName, err)
	}
	return out, nil
}

func structTag(style BindingStyle, key string) string {
	switch style {
	case BindingJSON, BindingGraphQL:
		return fmt.Sprintf(`json:"%s,omitempty"`, key)
	case BindingForm:
		return fmt.Sprintf(`form:"%s"`, key)
	}
	return ""
}

// generatedImports computes the import set split into standard library and
// third-party groups, each sorted by path.
func generatedImports(desc domain.RecordDescriptor, shape domain.InputShape, opts Options) (std, ext []domain.Import) {
	seen := map[string]bool{}
	add := func(imp domain.Import) {
		if seen[imp.Path] {
			return
		}
		seen[imp.Path] = true
		if isStdlib(imp.Path) {
			std = append(std, imp)
		} else {
			ext = append(ext, imp)
		}
	}

	add(domain.Import{Path: "context"})
	add(domain.Import{Path: opts.RuntimeImport})
	if opts.Binding == BindingForm {
		add(domain.Import{Path: "net/url"})
	}

	for _, m := range shape.Members {
		if m.Pagination {
			continue
		}
		if m.Category.Kind == domain.CategoryIdentifier {
			add(domain.Import{Path: uuidImportPath})
			continue
		}
		qualifier := m.Category.Qualifier()
		if qualifier == "" {
			continue
		}
		if imp, ok := matchImport(desc.Imports, qualifier); ok {
			add(imp)
		}
	}

	byPath := func(list []domain.Import) {
		sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	}
	byPath(std)
	byPath(ext)
	return std, ext
}

// matchImport finds the import a type qualifier refers to: an import
// declared under that name first, then an unnamed import whose path implies
// that package name.
func matchImport(candidates []domain.Import, qualifier string) (domain.Import, bool) {
	for _, imp := range candidates {
		if imp.Name == qualifier {
			return imp, true
		}
	}
	for _, imp := range candidates {
		if imp.Name == "" && PackageName(imp.Path) == qualifier {
			return imp, true
		}
	}
	return domain.Import{}, false
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// PackageName guesses the package name of an import path the way goimports
// does: the last element, skipping a major version suffix and trimming
// gopkg.in style .vN suffixes and go- prefixes.
func PackageName(importPath string) string {
	base := path.Base(importPath)
	if majorVersion.MatchString(base) {
		base = path.Base(path.Dir(importPath))
	}
	if i := strings.Index(base, ".v"); i > 0 {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, base)
}

func isStdlib(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}
