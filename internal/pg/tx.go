package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

type txState struct {
	tx          pgx.Tx
	afterCommit []func(ctx context.Context)
}

func stateFromContext(ctx context.Context) *txState {
	state, _ := ctx.Value(txKey{}).(*txState)
	return state
}

type Manager struct {
	db Beginner
}

func NewTXManager(db Beginner) *Manager {
	return &Manager{db: db}
}

// Begin runs fn in a transaction. A call made while ctx already carries a
// transaction joins it, so only the outermost call commits.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if stateFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		zap.L().Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}
	state := &txState{tx: tx}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		zap.L().Error("failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	for _, hook := range state.afterCommit {
		hook(ctx)
	}
	return nil
}

// AfterCommit schedules fn to run once the transaction in ctx commits.
// Without a transaction fn runs immediately. Hooks of a rolled back
// transaction are discarded.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if state := stateFromContext(ctx); state != nil {
		state.afterCommit = append(state.afterCommit, fn)
		return
	}
	fn(ctx)
}
