package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// NormalizeGoal trims surrounding whitespace. ok is false when nothing is left.
func NormalizeGoal(raw string) (goal string, ok bool) {
	goal = strings.TrimSpace(raw)
	return goal, goal != ""
}

// Task is one unit of work as produced by the model.
type Task struct {
	Task         string   `json:"task"`
	DurationDays int      `json:"duration_days"`
	DeadlineDays int      `json:"deadline_days"`
	Dependencies []string `json:"dependencies"`
}

// Plan holds the model's JSON document verbatim. It is not validated against
// the task schema; Tasks gives a best-effort typed view of it.
type Plan struct {
	raw json.RawMessage
}

var (
	errInvalidPlan = errors.New("plan is not valid JSON")
	errPlanShape   = errors.New("plan is not a JSON object")
)

// NewPlan wraps raw, which must be a single valid JSON object. Nothing
// beyond that is checked.
func NewPlan(raw []byte) (*Plan, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, errInvalidPlan
	}
	if trimmed[0] != '{' {
		return nil, errPlanShape
	}
	return &Plan{raw: append(json.RawMessage(nil), trimmed...)}, nil
}

// Raw returns the underlying document.
func (p Plan) Raw() json.RawMessage { return p.raw }

func (p Plan) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// ErrorField reports whether the document has a top-level "error" member
// and returns its value as text.
func (p Plan) ErrorField() (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(p.raw, &obj); err != nil {
		return "", false
	}
	v, ok := obj["error"]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	return string(v), true
}

// Tasks decodes the "tasks" array leniently: numeric fields may arrive as
// floats or numeric strings, missing fields stay zero and entries that are
// not objects are skipped. It never fails; a plan without a usable tasks
// array yields nil.
func (p Plan) Tasks() []Task {
	var doc struct {
		Tasks []json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(p.raw, &doc); err != nil {
		return nil
	}
	out := make([]Task, 0, len(doc.Tasks))
	for _, r := range doc.Tasks {
		var m map[string]any
		if err := json.Unmarshal(r, &m); err != nil || m == nil {
			continue
		}
		out = append(out, Task{
			Task:         asString(m["task"]),
			DurationDays: asInt(m["duration_days"]),
			DeadlineDays: asInt(m["deadline_days"]),
			Dependencies: asStrings(m["dependencies"]),
		})
	}
	return out
}

// ErrorDescriptor is the uniform failure body.
type ErrorDescriptor struct {
	Error string `json:"error"`
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(math.Round(t))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f))
	default:
		return 0
	}
}

func asStrings(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := asString(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if t == "" {
			return []string{}
		}
		return []string{t}
	default:
		return []string{}
	}
}
