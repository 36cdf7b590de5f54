package domain

import "strings"

// CategoryKind is the closed set of filterable value categories.
type CategoryKind string

const (
	CategoryText       CategoryKind = "text"
	CategoryIdentifier CategoryKind = "identifier"
	// CategoryForeign passes an unrecognised type through by name. Whether
	// the generated code compiles is left to the Go compiler.
	CategoryForeign CategoryKind = "foreign"
)

// ValueCategory is a tagged variant: Foreign is only set for CategoryForeign
// and holds the raw type name with any pointer decoration stripped.
type ValueCategory struct {
	Kind    CategoryKind `json:"kind" yaml:"kind"`
	Foreign string       `json:"foreign,omitempty" yaml:"foreign,omitempty"`
}

// Text returns the text category.
func Text() ValueCategory {
	return ValueCategory{Kind: CategoryText}
}

// Identifier returns the UUID identifier category.
func Identifier() ValueCategory {
	return ValueCategory{Kind: CategoryIdentifier}
}

// Foreign returns the pass-through category for typeName.
func Foreign(typeName string) ValueCategory {
	return ValueCategory{Kind: CategoryForeign, Foreign: typeName}
}

// GoType is the Go spelling of the value type a Filter Input member holds.
func (c ValueCategory) GoType() string {
	switch c.Kind {
	case CategoryText:
		return "string"
	case CategoryIdentifier:
		return "uuid.UUID"
	default:
		return c.Foreign
	}
}

// Qualifier returns the package qualifier the value type references, if any.
func (c ValueCategory) Qualifier() string {
	goType := strings.TrimLeft(c.GoType(), "*")
	if idx := strings.Index(goType, "["); idx >= 0 {
		goType = goType[:idx]
	}
	if idx := strings.LastIndex(goType, "."); idx >= 0 {
		return goType[:idx]
	}
	return ""
}

func (c ValueCategory) String() string {
	if c.Kind == CategoryForeign {
		return "foreign(" + c.Foreign + ")"
	}
	return string(c.Kind)
}
