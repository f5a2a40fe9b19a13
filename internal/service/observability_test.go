package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesEventFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "plan_create",
		Duration: 120 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"session_id": "abc"},
	})

	out := buf.String()
	assert.Contains(t, out, "plan_create")
	assert.Contains(t, out, "session_id=abc")
	assert.Contains(t, out, "success=true")
}

func TestLogUseCaseObserver_ErrorEvents(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "plan_autocreate",
		Success: false,
		Err:     fmt.Errorf("model unreachable"),
	})

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "model unreachable")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}
