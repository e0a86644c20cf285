package models

import "encoding/json"

// Offer represents a published service listing. Offers are immutable once
// created; there is no update or delete path.
type Offer struct {
	ID                int64  `db:"id" json:"id"`
	UserID            int64  `db:"user_id" json:"userId"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	Price             string `db:"price" json:"price"`
	ResponseTimeHours int64  `db:"response_time_hours" json:"responseTimeHours"`
}

// CreateOfferRequest defines the structure for an offer creation request.
// Price is a fixed-point decimal string; ResponseTimeHours accepts either a
// JSON number or a numeric string, as clients send both.
type CreateOfferRequest struct {
	Title             string      `json:"title" binding:"required,max=140"`
	Description       string      `json:"description" binding:"required"`
	Price             string      `json:"price" binding:"required,decimal"`
	ResponseTimeHours json.Number `json:"responseTimeHours" binding:"required,responsehours"`
}

// Hours returns the validated response-time commitment.
func (r *CreateOfferRequest) Hours() int64 {
	n, _ := r.ResponseTimeHours.Int64()
	return n
}
