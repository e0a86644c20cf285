package service

import (
	"context"
	"fmt"

	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/repository"
)

// OfferService defines the interface for offer business logic.
type OfferService interface {
	Create(ctx context.Context, ownerID int64, req *models.CreateOfferRequest) (*models.Offer, error)
	Get(ctx context.Context, id int64) (*models.Offer, error)
	List(ctx context.Context) ([]models.Offer, error)
}

type offerService struct {
	offerRepo repository.OfferRepository
}

// NewOfferService creates a new OfferService.
func NewOfferService(offerRepo repository.OfferRepository) OfferService {
	return &offerService{offerRepo: offerRepo}
}

// Create persists a new offer owned by ownerID. The request was already
// validated at the binding layer.
func (s *offerService) Create(ctx context.Context, ownerID int64, req *models.CreateOfferRequest) (*models.Offer, error) {
	offer := &models.Offer{
		UserID:            ownerID,
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		ResponseTimeHours: req.Hours(),
	}
	created, err := s.offerRepo.Create(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}
	return created, nil
}

// Get returns an offer or ErrOfferNotFound.
func (s *offerService) Get(ctx context.Context, id int64) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// List returns all published offers.
func (s *offerService) List(ctx context.Context) ([]models.Offer, error) {
	return s.offerRepo.List(ctx)
}
