package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "ai_recs_user-42_5", Key("user-42", 5))
	assert.Equal(t, "ai_recs_user-42_7", Key("user-42", 7))
}

func TestKey_ScopedPerUserAndDuration(t *testing.T) {
	// Same user with different durations gets distinct entries, as do
	// different users with the same duration.
	assert.NotEqual(t, Key("a", 3), Key("a", 4))
	assert.NotEqual(t, Key("a", 3), Key("b", 3))
}
