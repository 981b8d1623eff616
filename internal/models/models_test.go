package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGoal(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", false},
		{"   ", "", false},
		{"\n\t", "", false},
		{"  ship the app  ", "ship the app", true},
	}
	for _, tt := range tests {
		got, ok := NormalizeGoal(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestNewPlan_RejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "I cannot help with that.", `{"tasks": [}`,
		"null", "42", "true", `"I cannot help with that."`, `[{"task":"a"}]`} {
		p, err := NewPlan([]byte(in))
		assert.Error(t, err, "input %q", in)
		assert.Nil(t, p)
	}
}

func TestPlan_MarshalPassesThrough(t *testing.T) {
	raw := `{"tasks":[{"task":"a","duration_days":1,"deadline_days":1,"dependencies":[]}],"extra":true}`
	p, err := NewPlan([]byte("  " + raw + "\n"))
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(b))

	var zero Plan
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestPlan_TasksLenient(t *testing.T) {
	raw := `{"tasks":[
		{"task":"Design","duration_days":2,"deadline_days":2,"dependencies":[]},
		{"task":"Build","duration_days":"3","deadline_days":5.0,"dependencies":["Design"]},
		"not an object",
		{"task":"Ship","dependencies":"Build"}
	]}`
	p, err := NewPlan([]byte(raw))
	require.NoError(t, err)

	tasks := p.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, Task{Task: "Design", DurationDays: 2, DeadlineDays: 2, Dependencies: []string{}}, tasks[0])
	assert.Equal(t, Task{Task: "Build", DurationDays: 3, DeadlineDays: 5, Dependencies: []string{"Design"}}, tasks[1])
	assert.Equal(t, Task{Task: "Ship", Dependencies: []string{"Build"}}, tasks[2])
}

func TestPlan_TasksNotAnArray(t *testing.T) {
	p, err := NewPlan([]byte(`{"tasks":"none"}`))
	require.NoError(t, err)
	assert.Nil(t, p.Tasks())
}

func TestPlan_ErrorField(t *testing.T) {
	p, _ := NewPlan([]byte(`{"tasks":[]}`))
	_, ok := p.ErrorField()
	assert.False(t, ok)

	p, _ = NewPlan([]byte(`{"error":"goal is too vague"}`))
	msg, ok := p.ErrorField()
	assert.True(t, ok)
	assert.Equal(t, "goal is too vague", msg)

	p, _ = NewPlan([]byte(`{"error":{"code":3}}`))
	msg, ok = p.ErrorField()
	assert.True(t, ok)
	assert.Equal(t, `{"code":3}`, msg)
}
