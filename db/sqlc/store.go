package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines all functions to execute db queries and transactions
type Store interface {
	Querier
	// Ping checks the database connection
	Ping(ctx context.Context) error
	// User registration transaction
	CreateUserTx(ctx context.Context, arg CreateUserTxParams) (CreateUserTxResult, error)
	// Point credit transactions
	GrantWelcomeBonusTx(ctx context.Context, arg GrantWelcomeBonusTxParams) (GrantWelcomeBonusTxResult, error)
	CompleteJourneyTx(ctx context.Context, arg CompleteJourneyTxParams) (CompleteJourneyTxResult, error)
	CompleteQuestTx(ctx context.Context, arg CompleteQuestTxParams) (CompleteQuestTxResult, error)
	// Gacha transaction
	RollGachaTx(ctx context.Context, arg RollGachaTxParams) (RollGachaTxResult, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	connPool *pgxpool.Pool
	*Queries
}

// NewStore creates a new store
func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Ping checks the database connection
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}
