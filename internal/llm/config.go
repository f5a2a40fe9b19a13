package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskQuestion produces the next follow-up question for a session.
	TaskQuestion TaskType = "question"
	// TaskPlan produces the full 25-day plan.
	TaskPlan TaskType = "plan"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Plan generation
// gets a generous token and time budget: 25 structured day entries is a
// long completion.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  30000,
		MaxRetries: 1,
		LogCalls:   false,
		Tasks: map[TaskType]TaskConfig{
			TaskQuestion: {Temperature: 0.7, MaxTokens: 512, TimeoutMs: 15000},
			TaskPlan:     {Temperature: 0.7, MaxTokens: 8192, TimeoutMs: 120000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SOFTSEASON_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SOFTSEASON_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SOFTSEASON_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SOFTSEASON_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("SOFTSEASON_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskQuestion, "SOFTSEASON_LLM_QUESTION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "SOFTSEASON_LLM_PLAN_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
