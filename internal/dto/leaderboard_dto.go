package dto

// LeaderboardEntry carries exactly one metric depending on the list kind:
// TotalNotes for "contributors", TotalUpvotes for "upvoted".
type LeaderboardEntry struct {
	Rank         int         `json:"rank"`
	User         UserSummary `json:"user"`
	TotalNotes   int64       `json:"total_notes,omitempty"`
	TotalUpvotes int64       `json:"total_upvotes,omitempty"`
}
