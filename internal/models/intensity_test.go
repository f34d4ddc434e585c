package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntensityLabel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "温和委婉"},
		{2, "礼貌但坚定"},
		{5, "明显不悦"},
		{10, "绝对碾压"},
		{0, "适中"},
		{11, "适中"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IntensityLabel(tt.level), "level %d", tt.level)
	}
}

func TestIsValidIntensity(t *testing.T) {
	assert.False(t, IsValidIntensity(0))
	assert.True(t, IsValidIntensity(1))
	assert.True(t, IsValidIntensity(10))
	assert.False(t, IsValidIntensity(11))
	assert.False(t, IsValidIntensity(-3))
}

func TestIntensityLevels(t *testing.T) {
	levels := IntensityLevels()

	assert.Len(t, levels, 10)
	for i, option := range levels {
		assert.Equal(t, i+1, option.Level)
		assert.NotEqual(t, LabelModerate, option.Label)
	}
}
