package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	SkillName  string `json:"skillName"`
	MatchScore int    `json:"matchScore"`
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []rec
	}{
		{
			name: "纯JSON数组",
			text: `[{"skillName":"Go","matchScore":80}]`,
			want: []rec{{SkillName: "Go", MatchScore: 80}},
		},
		{
			name: "代码块包裹",
			text: "```json\n[{\"skillName\":\"Rust\",\"matchScore\":70}]\n```",
			want: []rec{{SkillName: "Rust", MatchScore: 70}},
		},
		{
			name: "前后夹杂解释文字",
			text: `Sure! Here are my recommendations:

[{"skillName":"SQL","matchScore":65}, {"skillName":"Docker","matchScore":60}]

Let me know if you need more detail.`,
			want: []rec{{SkillName: "SQL", MatchScore: 65}, {SkillName: "Docker", MatchScore: 60}},
		},
		{
			name: "字符串字面量里的方括号不干扰配对",
			text: `[{"skillName":"C++ [advanced]","matchScore":55}]`,
			want: []rec{{SkillName: "C++ [advanced]", MatchScore: 55}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []rec
			require.NoError(t, ExtractJSONArray(tt.text, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONArrayNoJSON(t *testing.T) {
	var got []rec
	err := ExtractJSONArray("I'm sorry, I can't produce that right now.", &got)
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONArrayUnbalanced(t *testing.T) {
	var got []rec
	err := ExtractJSONArray(`[{"skillName":"Go"`, &got)
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONObject(t *testing.T) {
	text := "Here is the path you asked for:\n```json\n{\"title\":\"Path to Data Scientist\",\"estimatedWeeks\":12}\n```"

	var got struct {
		Title          string `json:"title"`
		EstimatedWeeks int    `json:"estimatedWeeks"`
	}
	require.NoError(t, ExtractJSONObject(text, &got))
	assert.Equal(t, "Path to Data Scientist", got.Title)
	assert.Equal(t, 12, got.EstimatedWeeks)
}

func TestExtractJSONObjectNested(t *testing.T) {
	text := `{"outer":{"inner":{"value":"{not a brace}"}},"ok":true}`

	var got map[string]interface{}
	require.NoError(t, ExtractJSONObject(text, &got))
	assert.Equal(t, true, got["ok"])
}

func TestExtractJSONObjectInvalidFragment(t *testing.T) {
	var got map[string]interface{}
	err := ExtractJSONObject(`{"title": unquoted}`, &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSONFound)
}
