package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/inbucks/inbucks/internal/api/models"
)

// OfferRepository defines the interface for offer data operations. Offers
// are immutable once created.
type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	GetByID(ctx context.Context, id int64) (*models.Offer, error)
	List(ctx context.Context) ([]models.Offer, error)
}

type sqliteOfferRepository struct {
	db *sqlx.DB
}

// NewOfferRepository creates a new SQLite-based OfferRepository.
func NewOfferRepository(db *sqlx.DB) OfferRepository {
	return &sqliteOfferRepository{db: db}
}

// Create inserts a new offer and returns it with its generated id.
func (r *sqliteOfferRepository) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	ctx, span := tracer.Start(ctx, "OfferRepository.Create")
	defer span.End()

	query := `INSERT INTO offers (user_id, title, description, price, response_time_hours) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, offer.UserID, offer.Title, offer.Description, offer.Price, offer.ResponseTimeHours)
	if err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new offer id: %w", err)
	}

	created := *offer
	created.ID = id
	return &created, nil
}

// GetByID retrieves an offer by id. A missing offer is (nil, nil), not an
// error.
func (r *sqliteOfferRepository) GetByID(ctx context.Context, id int64) (*models.Offer, error) {
	ctx, span := tracer.Start(ctx, "OfferRepository.GetByID")
	defer span.End()

	var offer models.Offer
	query := `SELECT id, user_id, title, description, price, response_time_hours FROM offers WHERE id = ?`
	err := r.db.GetContext(ctx, &offer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get offer by id: %w", err)
	}
	return &offer, nil
}

// List returns all offers, newest first.
func (r *sqliteOfferRepository) List(ctx context.Context) ([]models.Offer, error) {
	ctx, span := tracer.Start(ctx, "OfferRepository.List")
	defer span.End()

	offers := []models.Offer{}
	query := `SELECT id, user_id, title, description, price, response_time_hours FROM offers ORDER BY id DESC`
	if err := r.db.SelectContext(ctx, &offers, query); err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}
