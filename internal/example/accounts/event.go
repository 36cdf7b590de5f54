package accounts

import (
	"time"

	guuid "github.com/google/uuid"
)

//go:generate go run github.com/rpattn/filtergen/cmd/filtergen generate --source event.go --type Event --dialect postgres --binding json --out event_filters.go

// Event is an audit entry recorded against a user.
//
//filtergen:table=events
type Event struct {
	ID       guuid.UUID `filter:""`
	UserID   guuid.UUID `db:"user_id" filter:"multiple"`
	Kind     string     `filter:"insensitive"`
	Severity int        `filter:"multiple"`
	At       time.Time  `db:"occurred_at" filter:""`
	Payload  []byte     `db:"-"`
}
