package agents

// planInstruction is sent ahead of every goal. The reply contract (a single
// JSON object with a "tasks" array) is what CleanModelOutput and the plan
// decoder expect.
const planInstruction = `You are an experienced project manager. Break the user's goal down into a list of actionable tasks.
Respond with ONLY a valid JSON object, no prose and no markdown. The object has exactly one key, "tasks", holding a list of task objects.
Every task object has these keys:
- "task": string, the name of the task
- "duration_days": integer, estimated effort in days
- "deadline_days": integer, cumulative deadline in days counted from today
- "dependencies": list of strings, the names of tasks that must finish first
Keep timelines realistic and dependencies logical.`

func buildPlanPrompt(goal string) string {
	return planInstruction + "\n\nGoal: " + goal
}
