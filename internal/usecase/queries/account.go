package queries

import (
	"context"
)

// AccountReadStore backs the auth commands; FindByEmail also returns the
// stored password hash so credentials never leave the command layer.
type AccountReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AccountView, string, error)
}
