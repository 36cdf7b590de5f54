package codegen

import "github.com/rpattn/filtergen/internal/domain"

// Pagination members appended to a Filter Input when the record opts in.
const (
	PageMember    = "Page"
	PerPageMember = "PerPage"
	PageKey       = "page"
	PerPageKey    = "per_page"
)

// FiltersTypeName is the name of the Filter Input type generated for record.
func FiltersTypeName(record string) string {
	return record + "Filters"
}

// Synthesize derives the Filter Input shape: one member per filter field in
// declaration order, then page and per_page when pagination is enabled.
func Synthesize(desc domain.RecordDescriptor) domain.InputShape {
	shape := domain.InputShape{
		Name:    FiltersTypeName(desc.RecordName),
		Members: make([]domain.InputMember, 0, len(desc.Fields)+2),
	}

	for _, f := range desc.Fields {
		shape.Members = append(shape.Members, domain.InputMember{
			Name:     f.Name,
			Key:      f.Column,
			Category: f.Category,
			Multiple: f.Opts.IsMultiple(),
		})
	}

	if desc.Pagination {
		shape.Members = append(shape.Members,
			domain.InputMember{Name: PageMember, Key: PageKey, Pagination: true},
			domain.InputMember{Name: PerPageMember, Key: PerPageKey, Pagination: true},
		)
	}

	return shape
}
