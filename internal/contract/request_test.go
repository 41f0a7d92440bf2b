package contract

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewCreatePlanRequest_SetsDefaults(t *testing.T) {
	deadline := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	req := NewCreatePlanRequest("Learn Go", deadline)

	assert.Equal(t, "Learn Go", req.Goal)
	assert.Equal(t, "beginner", req.Level)
	assert.Equal(t, 2.0, req.HoursPerDay)
	assert.Equal(t, deadline, req.Deadline)
}

func TestCreatePlanRequest_Input(t *testing.T) {
	req := CreatePlanRequest{Goal: "Data Science", Level: "advanced", HoursPerDay: 3}
	assert.Equal(t, domain.GoalInput{Goal: "Data Science", Level: "advanced", HoursPerDay: 3}, req.Input())
}

func TestPlanError_FormatsAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := &PlanError{Code: PlanErrEmptyRoadmap, Message: "no days left", Err: cause}

	assert.Equal(t, "EMPTY_ROADMAP: no days left", err.Error())
	assert.ErrorIs(t, err, cause)
}
