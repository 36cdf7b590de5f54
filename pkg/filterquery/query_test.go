package filterquery

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestQuerySQL_BaseSelectsColumns(t *testing.T) {
	q := New(Postgres, "users", "id", "name")

	sql, args := q.SQL()
	if sql != `SELECT "id", "name" FROM "users"` {
		t.Fatalf("unexpected base sql: %s", sql)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !q.IsBase() {
		t.Fatalf("expected fresh query to be base")
	}
}

func TestQuerySQL_StarWithoutColumns(t *testing.T) {
	sql, _ := New(SQLite, "public.users").SQL()
	if sql != `SELECT * FROM "public"."users"` {
		t.Fatalf("unexpected sql: %s", sql)
	}
}

func TestQuerySQL_PostgresPredicates(t *testing.T) {
	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

	tests := []struct {
		name     string
		apply    func(*Query) *Query
		wantSQL  string
		wantArgs []any
	}{
		{"eq", func(q *Query) *Query { return q.Eq("name", "ann") },
			`SELECT * FROM "users" WHERE "name" = $1`, []any{"ann"}},
		{"eq uuid", func(q *Query) *Query { return q.Eq("id", id) },
			`SELECT * FROM "users" WHERE "id" = $1`, []any{id}},
		{"contains", func(q *Query) *Query { return q.Contains("name", "an_n") },
			`SELECT * FROM "users" WHERE "name" LIKE $1`, []any{`%an\_n%`}},
		{"equal fold", func(q *Query) *Query { return q.EqualFold("name", "50%") },
			`SELECT * FROM "users" WHERE "name" ILIKE $1`, []any{`50\%`}},
		{"contains fold", func(q *Query) *Query { return q.ContainsFold("name", "ann") },
			`SELECT * FROM "users" WHERE "name" ILIKE $1`, []any{"%ann%"}},
		{"eq any", func(q *Query) *Query { return q.EqAny("tags", []string{"a", "b"}) },
			`SELECT * FROM "users" WHERE "tags" = ANY($1)`, []any{[]string{"a", "b"}}},
		{"contains any", func(q *Query) *Query { return q.ContainsAny("tags", []string{"a", "b"}) },
			`SELECT * FROM "users" WHERE "tags" LIKE ANY($1)`, []any{[]string{"%a%", "%b%"}}},
		{"equal fold any", func(q *Query) *Query { return q.EqualFoldAny("tags", []string{"A"}) },
			`SELECT * FROM "users" WHERE "tags" ILIKE ANY($1)`, []any{[]string{"A"}}},
		{"contains fold any", func(q *Query) *Query { return q.ContainsFoldAny("tags", []string{"x", "y"}) },
			`SELECT * FROM "users" WHERE "tags" ILIKE ANY($1)`, []any{[]string{"%x%", "%y%"}}},
		{"conjunction", func(q *Query) *Query { return q.Eq("a", 1).ContainsFold("b", "x") },
			`SELECT * FROM "users" WHERE "a" = $1 AND "b" ILIKE $2`, []any{1, "%x%"}},
		{"raw where", func(q *Query) *Query { return q.Eq("a", 1).Where("age > ? AND age < ?", 18, 65) },
			`SELECT * FROM "users" WHERE "a" = $1 AND (age > $2 AND age < $3)`, []any{1, 18, 65}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := tc.apply(New(Postgres, "users")).SQL()
			if sql != tc.wantSQL {
				t.Fatalf("sql mismatch\nwant: %s\ngot:  %s", tc.wantSQL, sql)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Fatalf("args mismatch\nwant: %#v\ngot:  %#v", tc.wantArgs, args)
			}
		})
	}
}

func TestQuerySQL_SQLitePredicates(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(*Query) *Query
		wantSQL  string
		wantArgs []any
	}{
		{"eq", func(q *Query) *Query { return q.Eq("name", "ann") },
			`SELECT * FROM "users" WHERE "name" = ?`, []any{"ann"}},
		{"contains uses glob", func(q *Query) *Query { return q.Contains("name", "a*b") },
			`SELECT * FROM "users" WHERE "name" GLOB ?`, []any{"*a[*]b*"}},
		{"equal fold", func(q *Query) *Query { return q.EqualFold("name", "ann") },
			`SELECT * FROM "users" WHERE "name" LIKE ? ESCAPE '\'`, []any{"ann"}},
		{"eq any expands", func(q *Query) *Query { return q.EqAny("tags", []string{"a", "b", "c"}) },
			`SELECT * FROM "users" WHERE "tags" IN (?, ?, ?)`, []any{"a", "b", "c"}},
		{"eq any empty", func(q *Query) *Query { return q.EqAny("tags", []string{}) },
			`SELECT * FROM "users" WHERE 1 = 0`, nil},
		{"contains fold any", func(q *Query) *Query { return q.ContainsFoldAny("tags", []string{"a", "b"}) },
			`SELECT * FROM "users" WHERE ("tags" LIKE ? ESCAPE '\' OR "tags" LIKE ? ESCAPE '\')`, []any{"%a%", "%b%"}},
		{"contains any single", func(q *Query) *Query { return q.ContainsAny("tags", []string{"a"}) },
			`SELECT * FROM "users" WHERE "tags" GLOB ?`, []any{"*a*"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := tc.apply(New(SQLite, "users")).SQL()
			if sql != tc.wantSQL {
				t.Fatalf("sql mismatch\nwant: %s\ngot:  %s", tc.wantSQL, sql)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Fatalf("args mismatch\nwant: %#v\ngot:  %#v", tc.wantArgs, args)
			}
		})
	}
}

func TestQueryPaginate_DefaultsAndCount(t *testing.T) {
	q := New(Postgres, "users", "id").ContainsFold("name", "ann")
	paged := q.Paginate(nil, nil, 0)

	sql, args := paged.SQL()
	want := `SELECT "id" FROM "users" WHERE "name" ILIKE $1 LIMIT $2 OFFSET $3`
	if sql != want {
		t.Fatalf("unexpected paged sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"%ann%", DefaultPerPage, int64(0)}) {
		t.Fatalf("unexpected paged args: %#v", args)
	}

	countSQL, countArgs := paged.CountSQL()
	if countSQL != `SELECT COUNT(*) FROM "users" WHERE "name" ILIKE $1` {
		t.Fatalf("count must ignore the page window, got %s", countSQL)
	}
	if !reflect.DeepEqual(countArgs, []any{"%ann%"}) {
		t.Fatalf("unexpected count args: %#v", countArgs)
	}

	if !reflect.DeepEqual(q.preds, paged.preds) || q.window != nil {
		t.Fatalf("paginate must not modify the source query")
	}
}

func TestQueryPaginate_PageAndSize(t *testing.T) {
	tests := []struct {
		name       string
		page, size *int64
		def        int64
		wantLimit  int64
		wantOffset int64
	}{
		{"third page", int64Ptr(3), int64Ptr(10), 0, 10, 20},
		{"generator default", nil, nil, 50, 50, 0},
		{"zero page is first", int64Ptr(0), int64Ptr(5), 0, 5, 0},
		{"negative size falls back", int64Ptr(2), int64Ptr(-1), 0, DefaultPerPage, DefaultPerPage},
		{"offset saturates", int64Ptr(math.MaxInt64/25 + 2), nil, 0, DefaultPerPage, math.MaxInt64},
		{"last page fits", int64Ptr(math.MaxInt64/25 + 1), nil, 0, DefaultPerPage, (math.MaxInt64 / 25) * 25},
		{"max page one row", int64Ptr(math.MaxInt64), int64Ptr(1), 0, 1, math.MaxInt64 - 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(Postgres, "t").Paginate(tc.page, tc.size, tc.def)
			if p.window.limit != tc.wantLimit || p.window.offset != tc.wantOffset {
				t.Fatalf("expected limit %d offset %d, got %+v", tc.wantLimit, tc.wantOffset, *p.window)
			}
		})
	}
}

func TestQueryPaginate_HugePageRendersSaturatedOffset(t *testing.T) {
	page := int64(math.MaxInt64/25 + 2)
	_, args := New(SQLite, "people", "id").Paginate(&page, nil, 0).SQL()

	want := []any{DefaultPerPage, int64(math.MaxInt64)}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected args %#v, got %#v", want, args)
	}
}

func TestQueryClone_Independent(t *testing.T) {
	q := New(Postgres, "users").Eq("a", 1)
	c := q.Clone().Eq("b", 2)

	if len(q.preds) != 1 || len(c.preds) != 2 {
		t.Fatalf("clone shares predicates: %d / %d", len(q.preds), len(c.preds))
	}
}

func TestParseDialect(t *testing.T) {
	for name, want := range map[string]Dialect{"": Postgres, "PostgreSQL": Postgres, "sqlite3": SQLite} {
		got, err := ParseDialect(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if got != want {
			t.Fatalf("dialect %q: expected %v, got %v", name, want, got)
		}
	}
	if _, err := ParseDialect("oracle"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
