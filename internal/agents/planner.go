package agents

import (
	"context"

	"github.com/example/goal-planner/internal/models"
)

// Planner turns a goal into a plan. Exactly one of the return values is
// non-nil; failures are always *PlanError.
type Planner interface {
	GeneratePlan(ctx context.Context, goal string) (*models.Plan, error)
}
