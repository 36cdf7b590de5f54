package codegen

import (
	"github.com/rpattn/filtergen/internal/domain"
	"github.com/rpattn/filtergen/pkg/filterquery"
)

// Methods of *filterquery.Query a predicate rule can name.
const (
	MethodEq              = "Eq"
	MethodContains        = "Contains"
	MethodEqualFold       = "EqualFold"
	MethodContainsFold    = "ContainsFold"
	MethodEqAny           = "EqAny"
	MethodContainsAny     = "ContainsAny"
	MethodEqualFoldAny    = "EqualFoldAny"
	MethodContainsFoldAny = "ContainsFoldAny"
)

var predicateMethods = map[domain.Multiplicity]map[domain.ComparisonKind]string{
	domain.Single: {
		domain.Exact:                MethodEq,
		domain.Substring:            MethodContains,
		domain.ExactInsensitive:     MethodEqualFold,
		domain.SubstringInsensitive: MethodContainsFold,
	},
	domain.Multiple: {
		domain.Exact:                MethodEqAny,
		domain.Substring:            MethodContainsAny,
		domain.ExactInsensitive:     MethodEqualFoldAny,
		domain.SubstringInsensitive: MethodContainsFoldAny,
	},
}

// SynthesizePredicate returns the rule attached when field's Filter Input
// member is present. It depends only on the field's comparison kind and
// multiplicity.
func SynthesizePredicate(field domain.FilterField, storage string) domain.PredicateRule {
	return domain.PredicateRule{
		Field:   field.Name,
		Column:  field.Column,
		Storage: storage,
		Method:  predicateMethod(field.Opts),
		Deref:   !field.Opts.IsMultiple(),
	}
}

// SynthesizePredicates returns one rule per filter field in declaration
// order.
func SynthesizePredicates(desc domain.RecordDescriptor) []domain.PredicateRule {
	rules := make([]domain.PredicateRule, len(desc.Fields))
	for i, f := range desc.Fields {
		rules[i] = SynthesizePredicate(f, desc.StorageName)
	}
	return rules
}

func predicateMethod(opts domain.FilterOpts) string {
	multiplicity := opts.Multiplicity
	if multiplicity == "" {
		multiplicity = domain.Single
	}
	kind := opts.Kind
	if kind == "" {
		kind = domain.Exact
	}
	return predicateMethods[multiplicity][kind]
}

// Apply attaches rule to q with an already typed value, exactly as generated
// code does.
func Apply(q *filterquery.Query, rule domain.PredicateRule, value any) *filterquery.Query {
	switch rule.Method {
	case MethodEq:
		return q.Eq(rule.Column, value)
	case MethodContains:
		return q.Contains(rule.Column, value)
	case MethodEqualFold:
		return q.EqualFold(rule.Column, value)
	case MethodContainsFold:
		return q.ContainsFold(rule.Column, value)
	case MethodEqAny:
		return q.EqAny(rule.Column, value)
	case MethodContainsAny:
		return q.ContainsAny(rule.Column, value)
	case MethodEqualFoldAny:
		return q.EqualFoldAny(rule.Column, value)
	case MethodContainsFoldAny:
		return q.ContainsFoldAny(rule.Column, value)
	}
	return q
}
