package models

import "time"

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `dynamodbav:"lat" json:"lat"`
	Lng float64 `dynamodbav:"lng" json:"lng"`
}

// UserProfile defines the structure for user profiles. Optional attributes
// are pointers so "not set" is distinguishable from a zero value.
type UserProfile struct {
	UserID            string    `dynamodbav:"userId" json:"user_id"`
	Email             string    `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Name              string    `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Picture           string    `dynamodbav:"picture,omitempty" json:"picture,omitempty"`
	Bio               string    `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Provider          string    `dynamodbav:"provider,omitempty" json:"provider,omitempty"`
	Photos            []string  `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	Interests         []string  `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Age               *int      `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Education         *string   `dynamodbav:"education,omitempty" json:"education,omitempty"`
	Location          *GeoPoint `dynamodbav:"location,omitempty" json:"location,omitempty"`
	IsProfileComplete bool      `dynamodbav:"isProfileComplete" json:"is_profile_complete"`
	CreatedAt         time.Time `dynamodbav:"createdAt" json:"created_at"`
	LastLogin         time.Time `dynamodbav:"lastLogin" json:"last_login"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"

// ScoredProfile is a user profile annotated with its compatibility score
// for the requesting user.
type ScoredProfile struct {
	UserProfile
	CompatibilityScore float64 `json:"compatibility_score"`
}

// FilteredProfile is a user profile annotated with the distance to the
// requesting user, when both locations are known.
type FilteredProfile struct {
	UserProfile
	Distance *float64 `json:"distance,omitempty"`
}
