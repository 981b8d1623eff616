package agents

import (
	"errors"
	"fmt"
)

// Kind classifies a plan generation failure.
type Kind string

const (
	KindInvalidGoal   Kind = "invalid_goal"
	KindNotConfigured Kind = "not_configured"
	KindProviderCall  Kind = "provider_call"
	KindOutputParse   Kind = "output_parse"
	KindModelError    Kind = "model_error"
	KindUnexpected    Kind = "unexpected"
)

const (
	msgGoalRequired = "Goal text is required."
	msgUnparseable  = "AI service returned invalid or unparseable JSON. Try refining the prompt or goal."
)

// PlanError is returned by GeneratePlan. Message is safe to show to the
// caller; Err keeps the underlying cause for logs.
type PlanError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *PlanError) Error() string { return e.Message }

func (e *PlanError) Unwrap() error { return e.Err }

// AsPlanError unwraps err into a *PlanError. Errors of any other type are
// reported as KindUnexpected.
func AsPlanError(err error) *PlanError {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe
	}
	return unexpected(err)
}

func notConfigured(envVar string, err error) *PlanError {
	return &PlanError{
		Kind:    KindNotConfigured,
		Message: fmt.Sprintf("LLM Client not initialized. Check %s in .env.", envVar),
		Err:     err,
	}
}

func providerCall(err error) *PlanError {
	return &PlanError{Kind: KindProviderCall, Message: fmt.Sprintf("LLM API Error: %v", err), Err: err}
}

func unexpected(err error) *PlanError {
	return &PlanError{Kind: KindUnexpected, Message: fmt.Sprintf("An unexpected error occurred: %v", err), Err: err}
}
