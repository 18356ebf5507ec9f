package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("nonexistent.schema.json", []byte(`{}`))
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(RecommendationListSchema, []byte("{not json"))
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_RecommendationListValid(t *testing.T) {
	doc := `[{"id":"kyoto","name":"Kyoto","reason":"temples","matching_score":0.9,"tags":["culture"]}]`
	assert.NoError(t, ValidateBytes(RecommendationListSchema, []byte(doc)))
}

func TestValidateBytes_RecommendationListMissingField(t *testing.T) {
	doc := `[{"id":"kyoto","name":"Kyoto","matching_score":0.9,"tags":["culture"]}]`
	err := ValidateBytes(RecommendationListSchema, []byte(doc))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "reason")
}

func TestValidateBytes_RecommendationListWrongType(t *testing.T) {
	doc := `{"id":"kyoto"}`
	err := ValidateBytes(RecommendationListSchema, []byte(doc))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateBytes_PlanDocumentRejectsEmptyObject(t *testing.T) {
	err := ValidateBytes(PlanDocumentSchema, []byte(`{}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	// One missing-property error per required field
	assert.GreaterOrEqual(t, len(validationErr.Errors), 11)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"yatra"}`))

	err := ValidateJSONString(schema, `{"name":42}`)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
