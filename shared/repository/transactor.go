package repository

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Transactor runs fn inside one database transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}
