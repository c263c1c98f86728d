package models

// Stats holds aggregate usage counts for the admin dashboard.
type Stats struct {
	TotalUsers     int `json:"total_users"`
	TotalFavorites int `json:"total_favorites"`
}
