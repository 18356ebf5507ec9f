package validation

import (
	"encoding/json"
	"fmt"

	"github.com/yatra/travel-planner/internal/schemas"
	"github.com/yatra/travel-planner/internal/types"
)

// ValidateRecommendations verifies a raw generator payload against the
// recommendation list contract. A count other than the expected three is
// tolerated and flagged; the list is returned as provided, never padded or
// truncated. A matching_score outside [0,1] is fatal.
func ValidateRecommendations(raw []byte) ([]types.Recommendation, []Issue, error) {
	if err := schemas.ValidateBytes(schemas.RecommendationListSchema, raw); err != nil {
		return nil, nil, asSchemaError("recommendation payload rejected", err)
	}

	var recs []types.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, nil, &SchemaError{Message: "recommendation payload is not decodable", Cause: err}
	}

	for i, rec := range recs {
		if rec.MatchingScore < 0 || rec.MatchingScore > 1 {
			return nil, nil, &SchemaError{
				Message: fmt.Sprintf("recommendations[%d].matching_score %.2f is outside [0,1]", i, rec.MatchingScore),
			}
		}
		if len(rec.Tags) == 0 {
			return nil, nil, &SchemaError{
				Message: fmt.Sprintf("recommendations[%d].tags is empty", i),
			}
		}
	}

	var issues []Issue
	if len(recs) != types.ExpectedRecommendations {
		issues = append(issues, warn(IssueCountMismatch, "recommendations",
			"expected %d recommendations, generator returned %d", types.ExpectedRecommendations, len(recs)))
	}

	return recs, issues, nil
}
