package models

import "time"

// Transaction statuses. Only "pending" is assigned in scope; the others are
// reserved for the declared lifecycle.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionRefunded  = "refunded"
)

// Transaction records a payment obligation between a buyer and the seller
// owning the referenced offer. Amount is copied from the offer's price at
// creation time.
type Transaction struct {
	ID        int64     `db:"id" json:"id"`
	BuyerID   int64     `db:"buyer_id" json:"buyerId"`
	SellerID  int64     `db:"seller_id" json:"sellerId"`
	OfferID   int64     `db:"offer_id" json:"offerId"`
	Amount    string    `db:"amount" json:"amount"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CreateTransactionRequest defines the structure for a transaction creation
// request. The buyer is the authenticated user; everything else derives from
// the referenced offer.
type CreateTransactionRequest struct {
	OfferID int64 `json:"offerId" binding:"required,min=1"`
}
