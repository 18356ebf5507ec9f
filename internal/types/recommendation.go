package types

// ExpectedRecommendations is how many destination picks a recommendation
// request asks the generator for. Responses with a different count are still
// usable but get flagged.
const ExpectedRecommendations = 3

// Recommendation is a short-form destination suggestion with a relevance score.
type Recommendation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Reason        string   `json:"reason"`
	MatchingScore float64  `json:"matching_score"`
	Tags          []string `json:"tags"`
}
