package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/goal-planner/internal/agents"
	"github.com/example/goal-planner/internal/config"
	"github.com/example/goal-planner/internal/providers/llm"
)

type cannedClient struct {
	reply  string
	prompt string
}

func (c *cannedClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.reply, nil
}

// withPlanner swaps bootstrap for one backed by client/initErr.
func withPlanner(t *testing.T, client llm.Client, initErr error) *string {
	t.Helper()
	var gotConfig string
	orig := bootstrap
	bootstrap = func(ctx context.Context, configPath string) (*app, error) {
		gotConfig = configPath
		return &app{
			cfg:     config.Default(),
			logger:  zap.NewNop(),
			planner: agents.NewLLMPlanner(client, initErr, zap.NewNop()),
			close:   func() {},
		}, nil
	}
	t.Cleanup(func() { bootstrap = orig })
	return &gotConfig
}

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCmd_JSON(t *testing.T) {
	c := &cannedClient{reply: "```json\n{\"tasks\":[{\"task\":\"Pick a venue\",\"duration_days\":3,\"deadline_days\":3,\"dependencies\":[]}]}\n```"}
	gotConfig := withPlanner(t, c, nil)

	out, err := run("plan", "--config", "planner.toml", "Organize", "a", "meetup")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks":[{"task":"Pick a venue","duration_days":3,"deadline_days":3,"dependencies":[]}]}`, out)
	assert.Contains(t, c.prompt, "Goal: Organize a meetup")
	assert.Equal(t, "planner.toml", *gotConfig)
}

func TestPlanCmd_Table(t *testing.T) {
	c := &cannedClient{reply: `{"tasks":[
		{"task":"Pick a venue","duration_days":3,"deadline_days":3,"dependencies":[]},
		{"task":"Send invites","duration_days":1,"deadline_days":4,"dependencies":["Pick a venue"]}
	]}`}
	withPlanner(t, c, nil)

	out, err := run("plan", "--table", "Organize a meetup")
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "TASK")
	assert.Contains(t, string(lines[1]), "Pick a venue")
	assert.Contains(t, string(lines[1]), "-")
	assert.Contains(t, string(lines[2]), "Send invites")
	assert.Contains(t, string(lines[2]), "Pick a venue")
}

func TestPlanCmd_NotConfigured(t *testing.T) {
	withPlanner(t, nil, &llm.NotConfiguredError{Provider: "gemini", EnvVar: "GEMINI_API_KEY"})

	out, err := run("plan", "Organize a meetup")
	require.Error(t, err)
	assert.Contains(t, out, `"error": "LLM Client not initialized. Check GEMINI_API_KEY in .env."`)
}

func TestPlanCmd_Args(t *testing.T) {
	withPlanner(t, &cannedClient{reply: `{"tasks":[]}`}, nil)

	_, err := run("plan")
	assert.Error(t, err)

	_, err = run("plan", "   ")
	assert.ErrorContains(t, err, "no goal provided")
}
