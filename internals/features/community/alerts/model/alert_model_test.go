package model

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTargetsTower(t *testing.T) {
	societyWide := AlertModel{}
	assert.True(t, societyWide.TargetsTower("A"))
	assert.True(t, societyWide.TargetsTower("Z"))

	scoped := AlertModel{AlertTowers: pq.StringArray{"A", "C"}}
	assert.True(t, scoped.TargetsTower("A"))
	assert.True(t, scoped.TargetsTower("C"))
	assert.False(t, scoped.TargetsTower("B"))
}
