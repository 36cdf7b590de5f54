package domain

// ComparisonKind is the predicate semantics applied to a filter value.
type ComparisonKind string

const (
	Exact                ComparisonKind = "exact"
	Substring            ComparisonKind = "substring"
	ExactInsensitive     ComparisonKind = "exact_insensitive"
	SubstringInsensitive ComparisonKind = "substring_insensitive"
)

// Multiplicity says whether a filter takes one value or a list of candidates
// matched with OR semantics.
type Multiplicity string

const (
	Single   Multiplicity = "single"
	Multiple Multiplicity = "multiple"
)

// FilterOpts is the structured form of a field's filter annotation.
type FilterOpts struct {
	Kind         ComparisonKind `json:"kind" yaml:"kind"`
	Multiplicity Multiplicity   `json:"multiplicity" yaml:"multiplicity"`
}

// DefaultFilterOpts is what a bare filter marker means.
func DefaultFilterOpts() FilterOpts {
	return FilterOpts{Kind: Exact, Multiplicity: Single}
}

// IsMultiple reports whether the filter accepts a list of values.
func (o FilterOpts) IsMultiple() bool {
	return o.Multiplicity == Multiple
}

// FilterField is one record field made available for filtering.
type FilterField struct {
	Name     string        `json:"name" yaml:"name"`
	Column   string        `json:"column" yaml:"column"`
	Category ValueCategory `json:"category" yaml:"category"`
	Opts     FilterOpts    `json:"opts" yaml:"opts"`
}
