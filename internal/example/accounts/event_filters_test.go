package accounts

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFilterEvent_SQL(t *testing.T) {
	userA := uuid.MustParse("0b7d6a52-1f3e-4c8a-9e2b-7a4d5c6e8f90")
	userB := uuid.MustParse("c3e1f7a9-5b2d-4e6f-8a1c-9d0b2e4f6a83")
	kind := "Login"
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	sql, args := FilterEvent(&EventFilters{
		UserID:   []uuid.UUID{userA, userB},
		Kind:     &kind,
		Severity: []int{2, 3},
		At:       &at,
	}).SQL()

	want := `SELECT "id", "user_id", "kind", "severity", "occurred_at" FROM "events" ` +
		`WHERE "user_id" = ANY($1) AND "kind" ILIKE $2 AND "severity" = ANY($3) AND "occurred_at" = $4`
	if sql != want {
		t.Fatalf("unexpected sql\nwant: %s\ngot:  %s", want, sql)
	}
	wantArgs := []any{[]uuid.UUID{userA, userB}, "Login", []int{2, 3}, at}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestFilterEvent_AliasedUUIDMember(t *testing.T) {
	id := uuid.MustParse("0b7d6a52-1f3e-4c8a-9e2b-7a4d5c6e8f90")

	// The record declares guuid.UUID; the filter member is the same type.
	var e Event
	e.ID = id
	f := &EventFilters{ID: &e.ID}

	sql, args := FilterEvent(f).SQL()
	if sql != `SELECT "id", "user_id", "kind", "severity", "occurred_at" FROM "events" WHERE "id" = $1` {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if len(args) != 1 || args[0] != id {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestFilterEvent_NilIsBase(t *testing.T) {
	if !FilterEvent(nil).IsBase() || !FilterEvent(&EventFilters{}).IsBase() {
		t.Fatalf("expected absent filters to yield the base query")
	}
}
