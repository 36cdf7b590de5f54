// Package filterquery is the runtime half of filtergen: generated Filter
// functions assemble a Query from present filter values, and the executors in
// this package run it against a caller-owned connection.
//
// A Query is a table scope plus a conjunction of predicates. Predicate values
// are always bound as parameters; wildcard wrapping and escaping is applied to
// the values alone, never to column names or operators.
package filterquery

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

// DefaultPerPage is the page size used when a paginated query names none.
const DefaultPerPage int64 = 25

type matchKind int

const (
	matchEq matchKind = iota
	matchContains
	matchEqualFold
	matchContainsFold
	matchRaw
)

type predicate struct {
	column string
	kind   matchKind
	many   bool
	value  any
	raw    string
	args   []any
}

type window struct {
	limit  int64
	offset int64
}

// Query is a dynamic SELECT over one table.
type Query struct {
	dialect Dialect
	table   string
	columns []string
	preds   []predicate
	window  *window
}

// New returns the unfiltered base query over table. With no columns the
// query selects *.
func New(dialect Dialect, table string, columns ...string) *Query {
	return &Query{
		dialect: dialect,
		table:   table,
		columns: append([]string(nil), columns...),
	}
}

// Dialect returns the SQL flavour the query renders to.
func (q *Query) Dialect() Dialect {
	return q.dialect
}

// Table returns the table the query is scoped to.
func (q *Query) Table() string {
	return q.table
}

// IsBase reports whether no predicate or page window has been attached.
func (q *Query) IsBase() bool {
	return len(q.preds) == 0 && q.window == nil
}

// Clone returns a copy that can be extended without affecting q.
func (q *Query) Clone() *Query {
	c := &Query{
		dialect: q.dialect,
		table:   q.table,
		columns: append([]string(nil), q.columns...),
	}
	if len(q.preds) > 0 {
		c.preds = append([]predicate(nil), q.preds...)
	}
	if q.window != nil {
		w := *q.window
		c.window = &w
	}
	return c
}

// Eq matches rows whose column equals v.
func (q *Query) Eq(column string, v any) *Query {
	return q.add(predicate{column: column, kind: matchEq, value: v})
}

// Contains matches rows whose column contains the text of v, case-sensitively.
func (q *Query) Contains(column string, v any) *Query {
	return q.add(predicate{column: column, kind: matchContains, value: v})
}

// EqualFold matches rows whose column equals the text of v, ignoring case.
func (q *Query) EqualFold(column string, v any) *Query {
	return q.add(predicate{column: column, kind: matchEqualFold, value: v})
}

// ContainsFold matches rows whose column contains the text of v, ignoring case.
func (q *Query) ContainsFold(column string, v any) *Query {
	return q.add(predicate{column: column, kind: matchContainsFold, value: v})
}

// EqAny matches rows whose column equals any element of the slice vs.
func (q *Query) EqAny(column string, vs any) *Query {
	return q.add(predicate{column: column, kind: matchEq, many: true, value: vs})
}

// ContainsAny matches rows whose column contains any element of vs.
func (q *Query) ContainsAny(column string, vs any) *Query {
	return q.add(predicate{column: column, kind: matchContains, many: true, value: vs})
}

// EqualFoldAny matches rows whose column equals any element of vs, ignoring case.
func (q *Query) EqualFoldAny(column string, vs any) *Query {
	return q.add(predicate{column: column, kind: matchEqualFold, many: true, value: vs})
}

// ContainsFoldAny matches rows whose column contains any element of vs,
// ignoring case.
func (q *Query) ContainsFoldAny(column string, vs any) *Query {
	return q.add(predicate{column: column, kind: matchContainsFold, many: true, value: vs})
}

// Where attaches a caller-written predicate. Each ? in expr binds the next
// element of args, rewritten to the dialect's placeholder syntax.
func (q *Query) Where(expr string, args ...any) *Query {
	return q.add(predicate{kind: matchRaw, raw: expr, args: args})
}

func (q *Query) add(p predicate) *Query {
	q.preds = append(q.preds, p)
	return q
}

// Paginate returns a copy limited to one page. Pages count from 1; a missing
// or non-positive page selects the first one. A missing or non-positive
// perPage falls back to defaultPerPage, then to DefaultPerPage. An offset
// past math.MaxInt64 saturates, so a page beyond the data is always empty.
func (q *Query) Paginate(page, perPage *int64, defaultPerPage int64) *Query {
	size := defaultPerPage
	if size <= 0 {
		size = DefaultPerPage
	}
	if perPage != nil && *perPage > 0 {
		size = *perPage
	}
	n := int64(1)
	if page != nil && *page > 1 {
		n = *page
	}

	offset := int64(math.MaxInt64)
	if n-1 <= math.MaxInt64/size {
		offset = (n - 1) * size
	}

	c := q.Clone()
	c.window = &window{limit: size, offset: offset}
	return c
}

// SQL renders the query and its bound arguments.
func (q *Query) SQL() (string, []any) {
	b := &builder{dialect: q.dialect}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(q.selectList())
	sb.WriteString(" FROM ")
	sb.WriteString(quoteIdent(q.table))
	q.writeWhere(&sb, b)

	if q.window != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.bind(q.window.limit))
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.bind(q.window.offset))
	}

	return sb.String(), b.args
}

// CountSQL renders a count of every row the query's predicates match. Any
// page window is ignored.
func (q *Query) CountSQL() (string, []any) {
	b := &builder{dialect: q.dialect}

	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(quoteIdent(q.table))
	q.writeWhere(&sb, b)

	return sb.String(), b.args
}

func (q *Query) selectList() string {
	if len(q.columns) == 0 {
		return "*"
	}
	quoted := make([]string, len(q.columns))
	for i, c := range q.columns {
		quoted[i] = quoteIdent(c)
	}
	return strings.Join(quoted, ", ")
}

func (q *Query) writeWhere(sb *strings.Builder, b *builder) {
	if len(q.preds) == 0 {
		return
	}
	clauses := make([]string, len(q.preds))
	for i, p := range q.preds {
		clauses[i] = p.render(b)
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(clauses, " AND "))
}

type builder struct {
	dialect Dialect
	args    []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return b.dialect.placeholder(len(b.args))
}

func (b *builder) rebind(expr string, args []any) string {
	var sb strings.Builder
	n := 0
	for _, r := range expr {
		if r == '?' && n < len(args) {
			sb.WriteString(b.bind(args[n]))
			n++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

const (
	sqliteGlob = "%s GLOB %s"
	sqliteLike = `%s LIKE %s ESCAPE '\'`
	matchNone  = "1 = 0"
)

func (p predicate) render(b *builder) string {
	if p.kind == matchRaw {
		return "(" + b.rebind(p.raw, p.args) + ")"
	}
	col := quoteIdent(p.column)
	if b.dialect == SQLite {
		return p.renderSQLite(b, col)
	}
	return p.renderPostgres(b, col)
}

func (p predicate) renderPostgres(b *builder, col string) string {
	var (
		op      string
		pattern func(string) string
	)
	switch p.kind {
	case matchContains:
		op, pattern = "LIKE", ContainsPattern
	case matchEqualFold:
		op, pattern = "ILIKE", EscapeLike
	case matchContainsFold:
		op, pattern = "ILIKE", ContainsPattern
	default:
		if p.many {
			return col + " = ANY(" + b.bind(p.value) + ")"
		}
		return col + " = " + b.bind(p.value)
	}

	if p.many {
		return col + " " + op + " ANY(" + b.bind(patterns(p.value, pattern)) + ")"
	}
	return col + " " + op + " " + b.bind(pattern(text(p.value)))
}

func (p predicate) renderSQLite(b *builder, col string) string {
	var (
		format  string
		pattern func(string) string
	)
	switch p.kind {
	case matchContains:
		format, pattern = sqliteGlob, ContainsGlob
	case matchEqualFold:
		format, pattern = sqliteLike, EscapeLike
	case matchContainsFold:
		format, pattern = sqliteLike, ContainsPattern
	default:
		if !p.many {
			return col + " = " + b.bind(p.value)
		}
		vals := elements(p.value)
		if len(vals) == 0 {
			return matchNone
		}
		marks := make([]string, len(vals))
		for i, v := range vals {
			marks[i] = b.bind(v)
		}
		return col + " IN (" + strings.Join(marks, ", ") + ")"
	}

	if !p.many {
		return fmt.Sprintf(format, col, b.bind(pattern(text(p.value))))
	}
	pats := patterns(p.value, pattern)
	switch len(pats) {
	case 0:
		return matchNone
	case 1:
		return fmt.Sprintf(format, col, b.bind(pats[0]))
	}
	clauses := make([]string, len(pats))
	for i, pat := range pats {
		clauses[i] = fmt.Sprintf(format, col, b.bind(pat))
	}
	return "(" + strings.Join(clauses, " OR ") + ")"
}

func quoteIdent(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// elements flattens a slice value. Anything else, arrays included, is a
// one-element list.
func elements(vs any) []any {
	rv := reflect.ValueOf(vs)
	if rv.Kind() != reflect.Slice {
		return []any{vs}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func patterns(vs any, pattern func(string) string) []string {
	elems := elements(vs)
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = pattern(text(e))
	}
	return out
}
