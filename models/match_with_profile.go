package models

import "time"

// MatchWithProfile is a match enriched with the other participant's profile,
// as returned to the client.
type MatchWithProfile struct {
	MatchID   string      `json:"match_id"`
	OtherUser UserProfile `json:"other_user"`
	CreatedAt time.Time   `json:"created_at"`
}

// UserStats reports rate-limit usage and aggregate counters for one user.
type UserStats struct {
	QueriesThisHour  int `json:"queries_this_hour"`
	QueriesRemaining int `json:"queries_remaining"`
	TotalSwipes      int `json:"total_swipes"`
	TotalMatches     int `json:"total_matches"`
}

// UserFilters are the optional criteria for filtered discovery.
type UserFilters struct {
	AgeMin      *int     `json:"age_min,omitempty"`
	AgeMax      *int     `json:"age_max,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	MaxDistance *float64 `json:"max_distance,omitempty"`
	Education   *string  `json:"education,omitempty"`
	Limit       int      `json:"limit,omitempty"`
	ExcludeIDs  []string `json:"exclude_ids,omitempty"`
}
