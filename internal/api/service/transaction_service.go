package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/repository"
)

// TransactionService defines the interface for transaction business logic.
type TransactionService interface {
	Create(ctx context.Context, buyerID, offerID int64) (*models.Transaction, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type transactionService struct {
	offerRepo repository.OfferRepository
	txRepo    repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(offerRepo repository.OfferRepository, txRepo repository.TransactionRepository) TransactionService {
	return &transactionService{offerRepo: offerRepo, txRepo: txRepo}
}

// Create resolves the referenced offer and records a pending transaction
// from buyerID to the offer's owner, with the amount copied from the offer's
// price at this moment. Returns ErrOfferNotFound when the offer is missing;
// nothing is persisted in that case.
func (s *transactionService) Create(ctx context.Context, buyerID, offerID int64) (*models.Transaction, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve offer: %w", err)
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	tx := &models.Transaction{
		BuyerID:  buyerID,
		SellerID: offer.UserID,
		OfferID:  offer.ID,
		Amount:   offer.Price,
		Status:   models.TransactionPending,
	}
	created, err := s.txRepo.Create(ctx, tx)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "transaction created",
		"transaction_id", created.ID,
		"buyer_id", created.BuyerID,
		"seller_id", created.SellerID,
		"amount", created.Amount,
	)
	return created, nil
}

// ListForUser returns all transactions where the user is buyer or seller.
func (s *transactionService) ListForUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.txRepo.ListForUser(ctx, userID)
}
