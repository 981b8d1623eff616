package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanModelOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"tasks": []}`, `{"tasks": []}`},
		{"surrounding whitespace", "\n  {\"tasks\": []}  \n", `{"tasks": []}`},
		{"json fence", "```json\n{\"tasks\": []}\n```", "\n{\"tasks\": []}\n"},
		{"json fence padded", "  ```json{\"tasks\": []}```\n", `{"tasks": []}`},
		{"closing fence only", "{\"tasks\": []}\n```", "{\"tasks\": []}\n"},
		// Narrow by design: these shapes are not recognized.
		{"bare fence", "```\n{}\n```", "```\n{}\n"},
		{"upper-case tag", "```JSON\n{}\n```", "```JSON\n{}\n"},
		{"prose around fence", "Here you go:\n```json\n{}\n```\nEnjoy", "Here you go:\n```json\n{}\n```\nEnjoy"},
		{"only fences", "```json```", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelOutput(tt.in))
		})
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	p := buildPlanPrompt("Launch a podcast")
	assert.Contains(t, p, `"tasks"`)
	assert.Contains(t, p, `"duration_days"`)
	assert.Contains(t, p, `"deadline_days"`)
	assert.Contains(t, p, `"dependencies"`)
	assert.Contains(t, p, "project manager")
	assert.True(t, len(p) > len(planInstruction))
	assert.Equal(t, planInstruction+"\n\nGoal: Launch a podcast", p)
}
