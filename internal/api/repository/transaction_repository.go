package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/inbucks/inbucks/internal/api/models"
)

// TransactionRepository defines the interface for transaction data
// operations. No status transition exists in scope; rows are created
// pending and only ever read back.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type sqliteTransactionRepository struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new SQLite-based TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) TransactionRepository {
	return &sqliteTransactionRepository{db: db}
}

// Create inserts a new transaction and returns it with its generated id.
func (r *sqliteTransactionRepository) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	ctx, span := tracer.Start(ctx, "TransactionRepository.Create")
	defer span.End()

	created := *tx
	created.CreatedAt = time.Now().UTC()

	query := `INSERT INTO transactions (buyer_id, seller_id, offer_id, amount, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, created.BuyerID, created.SellerID, created.OfferID, created.Amount, created.Status, created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new transaction id: %w", err)
	}

	created.ID = id
	return &created, nil
}

// ListForUser returns transactions where the user is either party, newest
// first.
func (r *sqliteTransactionRepository) ListForUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	ctx, span := tracer.Start(ctx, "TransactionRepository.ListForUser")
	defer span.End()

	txs := []models.Transaction{}
	query := `SELECT id, buyer_id, seller_id, offer_id, amount, status, created_at FROM transactions WHERE buyer_id = ? OR seller_id = ? ORDER BY id DESC`
	if err := r.db.SelectContext(ctx, &txs, query, userID, userID); err != nil {
		return nil, fmt.Errorf("failed to list transactions for user: %w", err)
	}
	return txs, nil
}
