package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/repository/mocks"
)

func TestCreateTransactionCopiesOfferPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	svc := NewTransactionService(offerRepo, txRepo)
	ctx := context.Background()

	offerRepo.EXPECT().GetByID(ctx, int64(5)).Return(&models.Offer{
		ID:     5,
		UserID: 2,
		Price:  "42.50",
	}, nil)
	txRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
			created := *tx
			created.ID = 10
			return &created, nil
		})

	tx, err := svc.Create(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), tx.ID)
	assert.Equal(t, int64(1), tx.BuyerID)
	assert.Equal(t, int64(2), tx.SellerID)
	assert.Equal(t, int64(5), tx.OfferID)
	assert.Equal(t, "42.50", tx.Amount)
	assert.Equal(t, models.TransactionPending, tx.Status)
}

func TestCreateTransactionMissingOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	svc := NewTransactionService(offerRepo, txRepo)
	ctx := context.Background()

	offerRepo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)
	// No Create expectation: nothing may be persisted.

	_, err := svc.Create(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestOfferServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	svc := NewOfferService(offerRepo)
	ctx := context.Background()

	offerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, offer *models.Offer) (*models.Offer, error) {
			created := *offer
			created.ID = 3
			return &created, nil
		})

	offer, err := svc.Create(ctx, 7, &models.CreateOfferRequest{
		Title:             "T",
		Description:       "D",
		Price:             "10.00",
		ResponseTimeHours: json.Number("24"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), offer.ID)
	assert.Equal(t, int64(7), offer.UserID)
	assert.Equal(t, "10.00", offer.Price)
	assert.Equal(t, int64(24), offer.ResponseTimeHours)
}

func TestOfferServiceGetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	svc := NewOfferService(offerRepo)
	ctx := context.Background()

	offerRepo.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

	_, err := svc.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}
