// Package accounts holds records whose filters are generated by filtergen.
// The *_filters.go files are generated; run go generate after editing a
// record.
package accounts

import "github.com/google/uuid"

//go:generate go run github.com/rpattn/filtergen/cmd/filtergen generate --source user.go --type User --dialect sqlite --binding form --out user_filters.go

// User is an account holder.
//
//filtergen:table=users
//filtergen:pagination
type User struct {
	ID    uuid.UUID `db:"id" filter:""`
	Name  string    `db:"name" filter:"substring,insensitive"`
	Tags  string    `filter:"multiple"`
	Email *string   `db:"email"`
}
