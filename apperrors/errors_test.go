package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(New(KindConflict, "taken")))
	assert.Equal(t, KindValidation, KindOf(Newf(KindValidation, "bad %s", "input")))
	assert.Equal(t, KindRemote, KindOf(errors.New("plain")), "unclassified errors count as remote")
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(KindNotFound, "project not found")
	outer := fmt.Errorf("loading: %w", inner)
	assert.True(t, IsNotFound(outer))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindRemote, "update project status", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "update project status")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(New(KindValidation, "")))
	assert.True(t, IsConflict(New(KindConflict, "")))
	assert.True(t, IsUnauthorized(New(KindUnauthorized, "")))
	assert.False(t, IsConflict(New(KindValidation, "")))
}
