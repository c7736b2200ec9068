// Package txn declares the unit-of-work boundary used by application services
// that must write several aggregates atomically.
package txn

import "context"

// Transactor runs fn inside a database transaction. The context passed to fn
// carries the transaction; repositories called with it join the transaction.
// Nested calls reuse the outer transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
