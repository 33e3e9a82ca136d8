// Package types contains shared read shapes exchanged with the remote service.
package types

// Profile is a user's published leaderboard record. The remote service owns
// it; the client writes via upsert and reads via the ranking snapshot.
type Profile struct {
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	TotalPresents int    `json:"total_presents"`
}

// RankingEntry is one row of the server-ordered ranking snapshot. The client
// never re-sorts the sequence.
type RankingEntry struct {
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	TotalPresents int    `json:"total_presents"`
}
