package llm

import (
	"context"
)

// MockClient returns a fixed plan. It is only used when LLM_PROVIDER=mock,
// for working on the front end without credentials.
type MockClient struct{}

const mockPlan = "```json\n" + `{
  "tasks": [
    {"task": "Clarify the goal and success criteria", "duration_days": 1, "deadline_days": 1, "dependencies": []},
    {"task": "Draft an execution outline", "duration_days": 2, "deadline_days": 3, "dependencies": ["Clarify the goal and success criteria"]},
    {"task": "Carry out the work", "duration_days": 5, "deadline_days": 8, "dependencies": ["Draft an execution outline"]},
    {"task": "Review and wrap up", "duration_days": 1, "deadline_days": 9, "dependencies": ["Carry out the work"]}
  ]
}` + "\n```"

func (m *MockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return mockPlan, nil
}
