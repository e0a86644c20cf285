package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/db"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := db.Connect(":memory:")
	require.NoError(t, err)
	// A second pool connection would open a second empty in-memory database.
	pool.SetMaxOpenConns(1)
	require.NoError(t, db.InitSchema(pool))
	t.Cleanup(func() { pool.Close() })
	return pool
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	pool := newTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice@example.com", "hash.salt")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	require.NotNil(t, byEmail.PasswordHash)
	assert.Equal(t, "hash.salt", *byEmail.PasswordHash)
	assert.False(t, byEmail.EmailVerified)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepositoryMissingUserIsNil(t *testing.T) {
	pool := newTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	byEmail, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	pool := newTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	first, err := repo.Create(ctx, "alice@example.com", "hash.salt")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "alice@example.com", "other.salt")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The original row is untouched.
	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "hash.salt", *got.PasswordHash)
}

func TestOfferRepositoryCreateGetList(t *testing.T) {
	pool := newTestDB(t)
	users := NewUserRepository(pool)
	offers := NewOfferRepository(pool)
	ctx := context.Background()

	owner, err := users.Create(ctx, "seller@example.com", "hash.salt")
	require.NoError(t, err)

	created, err := offers.Create(ctx, &models.Offer{
		UserID:            owner.ID,
		Title:             "Career advice",
		Description:       "Thoughtful reply to one email",
		Price:             "25.00",
		ResponseTimeHours: 24,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := offers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Career advice", got.Title)
	assert.Equal(t, "25.00", got.Price)
	assert.Equal(t, int64(24), got.ResponseTimeHours)

	missing, err := offers.GetByID(ctx, created.ID+1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := offers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestTransactionRepositoryListsEitherParty(t *testing.T) {
	pool := newTestDB(t)
	users := NewUserRepository(pool)
	offers := NewOfferRepository(pool)
	txs := NewTransactionRepository(pool)
	ctx := context.Background()

	seller, err := users.Create(ctx, "seller@example.com", "hash.salt")
	require.NoError(t, err)
	buyer, err := users.Create(ctx, "buyer@example.com", "hash.salt")
	require.NoError(t, err)
	other, err := users.Create(ctx, "other@example.com", "hash.salt")
	require.NoError(t, err)

	offer, err := offers.Create(ctx, &models.Offer{
		UserID:            seller.ID,
		Title:             "T",
		Description:       "D",
		Price:             "10.00",
		ResponseTimeHours: 24,
	})
	require.NoError(t, err)

	created, err := txs.Create(ctx, &models.Transaction{
		BuyerID:  buyer.ID,
		SellerID: seller.ID,
		OfferID:  offer.ID,
		Amount:   offer.Price,
		Status:   models.TransactionPending,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.TransactionPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	forBuyer, err := txs.ListForUser(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, forBuyer, 1)
	assert.Equal(t, "10.00", forBuyer[0].Amount)

	forSeller, err := txs.ListForUser(ctx, seller.ID)
	require.NoError(t, err)
	assert.Len(t, forSeller, 1)

	forOther, err := txs.ListForUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, forOther)
}
