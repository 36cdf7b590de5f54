// Package codegen compiles a record description into a Filter Input type and
// the query functions that apply it. The pipeline is pure and deterministic:
// Collect classifies and interprets each annotated field, Synthesize and
// SynthesizePredicates derive the input shape and per-field rules, and Emit
// renders Go source from them.
package codegen

import "github.com/rpattn/filtergen/internal/domain"

// Output is everything one generator run produces for a record.
type Output struct {
	Descriptor domain.RecordDescriptor
	Shape      domain.InputShape
	Rules      []domain.PredicateRule
	// Source is the formatted Go file.
	Source []byte
	// GraphQL is the input object schema, set for the graphql binding only.
	GraphQL []byte
}

// Generator runs the pipeline with fixed emit options.
type Generator struct {
	opts Options
}

// NewGenerator returns a generator that emits with opts.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate compiles one record. Any generation error aborts the run and no
// partial output is returned.
func (g *Generator) Generate(src domain.RecordSource) (*Output, error) {
	desc, err := Collect(src)
	if err != nil {
		return nil, err
	}

	shape := Synthesize(desc)
	rules := SynthesizePredicates(desc)

	source, err := Emit(desc, shape, rules, g.opts)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Descriptor: desc,
		Shape:      shape,
		Rules:      rules,
		Source:     source,
	}
	if g.opts.Binding == BindingGraphQL {
		out.GraphQL = EmitGraphQL(shape)
	}
	return out, nil
}
