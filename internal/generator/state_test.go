package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt_HappyPath(t *testing.T) {
	a := NewAttempt()
	assert.Equal(t, StateNoPlan, a.State())

	require.NoError(t, a.Begin())
	assert.Equal(t, StateGenerating, a.State())

	require.NoError(t, a.Succeed())
	assert.Equal(t, StateReady, a.State())
}

func TestAttempt_FailureThenRetry(t *testing.T) {
	a := NewAttempt()
	require.NoError(t, a.Begin())
	require.NoError(t, a.Fail())
	assert.Equal(t, StateFailed, a.State())

	// Failed is retryable
	require.NoError(t, a.Begin())
	assert.Equal(t, StateGenerating, a.State())
	require.NoError(t, a.Succeed())
	assert.Equal(t, StateReady, a.State())
}

func TestAttempt_InvalidTransitions(t *testing.T) {
	a := NewAttempt()

	// Cannot finish before starting
	assert.Error(t, a.Succeed())
	assert.Error(t, a.Fail())

	require.NoError(t, a.Begin())
	// Cannot start twice
	assert.Error(t, a.Begin())

	require.NoError(t, a.Succeed())
	// Ready is terminal
	assert.Error(t, a.Begin())
	assert.Error(t, a.Succeed())
	assert.Error(t, a.Fail())
}
