package services

import (
	"ember_server/models"
	"ember_server/utils"
)

// Compatibility scoring. Four independent sub-scores sum to at most 100:
// age 30, shared interests 40, location proximity 20, education 10.

const defaultAge = 25

func ageScore(age1, age2 *int) float64 {
	a, b := defaultAge, defaultAge
	if age1 != nil {
		a = *age1
	}
	if age2 != nil {
		b = *age2
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	score := 30 - float64(diff)*2
	if score < 0 {
		return 0
	}
	return score
}

func interestScore(interests1, interests2 []string) float64 {
	if len(interests1) == 0 || len(interests2) == 0 {
		return 0
	}

	set1 := make(map[string]struct{}, len(interests1))
	union := make(map[string]struct{}, len(interests1)+len(interests2))
	for _, interest := range interests1 {
		set1[interest] = struct{}{}
		union[interest] = struct{}{}
	}

	common := 0
	counted := make(map[string]struct{}, len(interests2))
	for _, interest := range interests2 {
		union[interest] = struct{}{}
		if _, dup := counted[interest]; dup {
			continue
		}
		counted[interest] = struct{}{}
		if _, shared := set1[interest]; shared {
			common++
		}
	}

	return float64(common) / float64(len(union)) * 40
}

func locationScore(loc1, loc2 *models.GeoPoint) float64 {
	if loc1 == nil || loc2 == nil {
		return 0
	}

	distance := utils.CalculateDistance(loc1.Lat, loc1.Lng, loc2.Lat, loc2.Lng)
	score := 20 - distance*0.4
	if score < 0 {
		return 0
	}
	return score
}

// educationScore awards the full 10 points when both fields are equal.
// Two unset fields count as equal, matching the reference behavior.
func educationScore(edu1, edu2 *string) float64 {
	if edu1 == nil && edu2 == nil {
		return 10
	}
	if edu1 == nil || edu2 == nil {
		return 0
	}
	if *edu1 == *edu2 {
		return 10
	}
	return 0
}

// CompatibilityScore maps two profiles to a score in [0, 100].
func CompatibilityScore(user1, user2 *models.UserProfile) float64 {
	score := ageScore(user1.Age, user2.Age) +
		interestScore(user1.Interests, user2.Interests) +
		locationScore(user1.Location, user2.Location) +
		educationScore(user1.Education, user2.Education)

	if score > 100 {
		return 100
	}
	return score
}
