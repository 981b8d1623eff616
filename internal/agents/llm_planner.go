package agents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/goal-planner/internal/models"
	"github.com/example/goal-planner/internal/providers/llm"
	"github.com/example/goal-planner/internal/requestid"
)

const defaultKeyEnv = "GEMINI_API_KEY"

// maxLoggedOutput bounds how much unparseable model text goes to the debug log.
const maxLoggedOutput = 512

// LLMPlanner asks a remote model for a task breakdown of a goal.
//
// Client is created once at startup and shared by all requests. When it could
// not be created, InitErr holds the reason and every call fails fast without
// touching the network.
type LLMPlanner struct {
	Client  llm.Client
	InitErr error
	Logger  *zap.Logger

	// Model is only used in log lines.
	Model string
	// Timeout bounds a single provider call; zero leaves it to the transport.
	Timeout time.Duration
}

func NewLLMPlanner(client llm.Client, initErr error, logger *zap.Logger) *LLMPlanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMPlanner{Client: client, InitErr: initErr, Logger: logger}
}

// GeneratePlan never panics: any fault during the call is reported as a
// *PlanError of KindUnexpected.
func (p *LLMPlanner) GeneratePlan(ctx context.Context, goal string) (plan *models.Plan, err error) {
	start := time.Now()
	log := p.logger().With(
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.String("model", p.Model),
	)
	defer func() {
		if r := recover(); r != nil {
			plan = nil
			err = unexpected(fmt.Errorf("%v", r))
			log.Error("plan generation panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
		logOutcome(log, plan, err, time.Since(start))
	}()

	if p.Client == nil || p.InitErr != nil {
		return nil, notConfigured(missingSetting(p.InitErr), p.InitErr)
	}
	g, ok := models.NormalizeGoal(goal)
	if !ok {
		return nil, &PlanError{Kind: KindInvalidGoal, Message: msgGoalRequired}
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	raw, err := p.Client.GenerateText(ctx, buildPlanPrompt(g))
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			return nil, unexpected(err)
		}
		log.Error("llm call failed", zap.Error(err), zap.Int("goal_len", len(g)))
		return nil, providerCall(err)
	}

	plan, perr := models.NewPlan([]byte(CleanModelOutput(raw)))
	if perr != nil {
		log.Debug("unparseable model output", zap.String("output", truncate(raw, maxLoggedOutput)))
		return nil, &PlanError{Kind: KindOutputParse, Message: msgUnparseable, Err: perr}
	}
	if msg, ok := plan.ErrorField(); ok {
		return nil, &PlanError{Kind: KindModelError, Message: "AI service reported an error: " + msg}
	}
	return plan, nil
}

func (p *LLMPlanner) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func logOutcome(log *zap.Logger, plan *models.Plan, err error, took time.Duration) {
	if err != nil {
		pe := AsPlanError(err)
		log.Warn("plan generation failed", zap.String("kind", string(pe.Kind)), zap.Duration("latency", took))
		return
	}
	log.Info("plan generated", zap.Int("tasks", len(plan.Tasks())), zap.Duration("latency", took))
}

func missingSetting(initErr error) string {
	var nce *llm.NotConfiguredError
	if errors.As(initErr, &nce) && nce.EnvVar != "" {
		return nce.EnvVar
	}
	return defaultKeyEnv
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
