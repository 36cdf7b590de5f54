package domain

// SourceField is one declared field of a record as an input adapter reads it.
type SourceField struct {
	Name   string
	Column string
	Type   string
	// Filter is nil when the field carries no filter annotation. A non-nil
	// empty slice is a bare marker.
	Filter []string
}

// Annotated reports whether the field carries a filter annotation.
func (f SourceField) Annotated() bool {
	return f.Filter != nil
}

// Import is a package the record's declaring file imports. Foreign value
// types may reference it.
type Import struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Path string `json:"path" yaml:"path"`
}

// RecordSource is the structured, not yet validated description of a record
// produced by an input adapter.
type RecordSource struct {
	RecordName  string
	StorageName string
	Pagination  bool
	Package     string
	Fields      []SourceField
	Imports     []Import
}

// Column is one selected storage column and the record field it scans into.
type Column struct {
	Field  string `json:"field" yaml:"field"`
	Column string `json:"column" yaml:"column"`
}

// RecordDescriptor is the validated record a generator run compiles. It is
// built once by the collector and not modified afterwards.
type RecordDescriptor struct {
	RecordName  string        `json:"record" yaml:"record"`
	StorageName string        `json:"table" yaml:"table"`
	Pagination  bool          `json:"pagination" yaml:"pagination"`
	Package     string        `json:"package,omitempty" yaml:"package,omitempty"`
	Fields      []FilterField `json:"fields" yaml:"fields"`
	Columns     []Column      `json:"columns" yaml:"columns"`
	Imports     []Import      `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// HasMultiple reports whether any filter field accepts a list of values.
func (d RecordDescriptor) HasMultiple() bool {
	for _, f := range d.Fields {
		if f.Opts.IsMultiple() {
			return true
		}
	}
	return false
}

// ColumnNames returns the selected column names in declaration order.
func (d RecordDescriptor) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Column
	}
	return names
}

// InputMember is one member of a synthesized Filter Input type.
type InputMember struct {
	Name string `json:"name" yaml:"name"`
	// Key is the serialized name an external binding layer uses.
	Key        string        `json:"key" yaml:"key"`
	Category   ValueCategory `json:"category" yaml:"category"`
	Multiple   bool          `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Pagination bool          `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// GoType is the Go type of the member: a pointer for single values, a slice
// for lists, where nil means absent either way.
func (m InputMember) GoType() string {
	if m.Pagination {
		return "*int64"
	}
	if m.Multiple {
		return "[]" + m.Category.GoType()
	}
	return "*" + m.Category.GoType()
}

// InputShape is the synthesized Filter Input type.
type InputShape struct {
	Name    string        `json:"name" yaml:"name"`
	Members []InputMember `json:"members" yaml:"members"`
}

// PredicateRule is how one filter field constrains the query when its Filter
// Input member is present: Method names the filterquery.Query method to call
// with the member's value.
type PredicateRule struct {
	Field   string `json:"field" yaml:"field"`
	Column  string `json:"column" yaml:"column"`
	Storage string `json:"table" yaml:"table"`
	Method  string `json:"method" yaml:"method"`
	// Deref is set when the member is a pointer that must be dereferenced
	// before it is passed on.
	Deref bool `json:"deref,omitempty" yaml:"deref,omitempty"`
}
