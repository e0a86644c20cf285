package models

import "time"

// User represents a user row in the database. PasswordHash is nil for
// identities authenticated externally.
type User struct {
	ID               int64     `db:"id"`
	Email            string    `db:"email"`
	PasswordHash     *string   `db:"password_hash"`
	StripeCustomerID *string   `db:"stripe_customer_id"`
	EmailVerified    bool      `db:"email_verified"`
	CreatedAt        time.Time `db:"created_at"`
}

// PublicUser is the client-facing view of a user. It never carries the
// password hash.
type PublicUser struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	StripeCustomerID *string   `json:"stripeCustomerId"`
	EmailVerified    bool      `json:"emailVerified"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Public redacts the user for responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Email:            u.Email,
		StripeCustomerID: u.StripeCustomerID,
		EmailVerified:    u.EmailVerified,
		CreatedAt:        u.CreatedAt,
	}
}

// RegisterRequest defines the structure for a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest defines the structure for a user login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
