package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabelRoundTrip(t *testing.T) {
	for _, step := range StatusOrder {
		label := step.Label()
		assert.NotEmpty(t, label, "step %s must have a label", step)

		back, err := StatusFromLabel(label)
		assert.NoError(t, err)
		assert.Equal(t, step, back)
	}
}

func TestStatusFromLabelUnknown(t *testing.T) {
	_, err := StatusFromLabel("Archived")
	assert.Error(t, err)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusNew.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, ProjectStatus("STEP7").Valid())
	assert.False(t, ProjectStatus("").Valid())
}

func TestStatusNext(t *testing.T) {
	next, ok := StatusNew.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusProposalsSent, next)

	next, ok = StatusActive.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = StatusCompleted.Next()
	assert.False(t, ok, "Completed is terminal")
}

func TestStatusOrderCoversAllLabels(t *testing.T) {
	assert.Len(t, StatusOrder, len(statusLabels))
	seen := map[string]bool{}
	for _, step := range StatusOrder {
		label := step.Label()
		assert.False(t, seen[label], "label %s reused", label)
		seen[label] = true
	}
}
