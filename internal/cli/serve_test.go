package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServeCmd_StopsOnCancel(t *testing.T) {
	withPlanner(t, &cannedClient{reply: `{"tasks":[]}`}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not shut down")
	}
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	withPlanner(t, &cannedClient{reply: `{"tasks":[]}`}, nil)

	_, err := run("serve", "extra")
	assert.Error(t, err)
}
