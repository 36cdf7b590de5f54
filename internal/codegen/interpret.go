package codegen

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/rpattn/filtergen/internal/domain"
	"github.com/rpattn/filtergen/pkg/filterquery"
)

// BuildQuery assembles the query generated code would build for desc when
// its Filter Input is decoded from values. Keys are member keys; a key that
// is absent leaves its field unconstrained. Foreign values are passed
// through as text.
func BuildQuery(desc domain.RecordDescriptor, values url.Values, dialect filterquery.Dialect, defaultPerPage int64) (*filterquery.Query, error) {
	q := filterquery.New(dialect, desc.StorageName, desc.ColumnNames()...)

	for _, field := range desc.Fields {
		raw, ok := values[field.Column]
		if !ok {
			continue
		}
		value, err := convertValue(field, raw)
		if err != nil {
			return nil, err
		}
		q = Apply(q, SynthesizePredicate(field, desc.StorageName), value)
	}

	if !desc.Pagination {
		return q, nil
	}

	page, err := int64Value(values, PageKey)
	if err != nil {
		return nil, err
	}
	perPage, err := int64Value(values, PerPageKey)
	if err != nil {
		return nil, err
	}
	return q.Paginate(page, perPage, defaultPerPage), nil
}

func convertValue(field domain.FilterField, raw []string) (any, error) {
	if !field.Opts.IsMultiple() {
		if len(raw) != 1 {
			return nil, fmt.Errorf("filter %s takes a single value, got %d", field.Column, len(raw))
		}
		return convertOne(field, raw[0])
	}

	if field.Category.Kind == domain.CategoryIdentifier {
		ids := make([]uuid.UUID, 0, len(raw))
		for _, s := range raw {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s value %q: %w", field.Column, s, err)
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	return append([]string{}, raw...), nil
}

func convertOne(field domain.FilterField, s string) (any, error) {
	if field.Category.Kind != domain.CategoryIdentifier {
		return s, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s value %q: %w", field.Column, s, err)
	}
	return id, nil
}

func int64Value(values url.Values, key string) (*int64, error) {
	s := values.Get(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return &n, nil
}
