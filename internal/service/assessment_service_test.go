package service

import (
	"skillbridge_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  model.SkillLevel
	}{
		{0, model.LevelBeginner},
		{39, model.LevelBeginner},
		{40, model.LevelIntermediate},
		{69, model.LevelIntermediate},
		{70, model.LevelAdvanced},
		{89, model.LevelAdvanced},
		{90, model.LevelExpert},
		{100, model.LevelExpert},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestLevelFromXP(t *testing.T) {
	assert.Equal(t, 1, LevelFromXP(0))
	assert.Equal(t, 1, LevelFromXP(99))
	assert.Equal(t, 2, LevelFromXP(100))
	assert.Equal(t, 6, LevelFromXP(520))
	assert.Equal(t, 1, LevelFromXP(-10))
}
