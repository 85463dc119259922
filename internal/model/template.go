package model

// QuickTemplate is a reusable preset of note, amount, and category for fast
// entry. Templates are created and deleted by explicit user action and only
// ever modified wholesale through an update keyed by id.
type QuickTemplate struct {
	ID         string
	Note       string
	CategoryID CategoryID
	Amount     int64
}
