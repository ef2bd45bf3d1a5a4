package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações. Commit e
// rollback ficam a cargo de WithTransaction, conforme fn retorna.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
