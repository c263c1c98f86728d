package models

import "time"

// Favorite is a user's saved reference to a token on a specific chain.
type Favorite struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	TokenAddress string    `json:"token_address"`
	ChainID      string    `json:"chain_id"`
	TokenName    string    `json:"token_name,omitempty"`
	TokenSymbol  string    `json:"token_symbol,omitempty"`
	TokenLogo    string    `json:"token_logo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteWithUser is a favorite joined with the owning user's name,
// returned by the admin listing.
type FavoriteWithUser struct {
	Favorite
	Username string `json:"username"`
}
