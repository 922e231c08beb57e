package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(ComplaintPending, ComplaintInProgress))
	assert.True(t, CanTransition(ComplaintPending, ComplaintResolved))
	assert.True(t, CanTransition(ComplaintInProgress, ComplaintResolved))
	assert.True(t, CanTransition(ComplaintResolved, ComplaintResolved))

	assert.False(t, CanTransition(ComplaintInProgress, ComplaintPending))
	assert.False(t, CanTransition(ComplaintResolved, ComplaintInProgress))
	assert.False(t, CanTransition(ComplaintResolved, ComplaintPending))
	assert.False(t, CanTransition("Unknown", ComplaintResolved))
}
