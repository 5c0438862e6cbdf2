package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Date   string `json:"appointment_date" validate:"required,date"`
	Time   string `json:"appointment_time" validate:"required,clock"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed"`
}

func TestValidate_AcceptsValidInput(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Date: "2024-06-01", Time: "09:00", Status: "pending"})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Date: "06/01/2024", Time: "9am", Status: "done"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "appointment_date must be a date in YYYY-MM-DD format", errs["appointment_date"])
	assert.Equal(t, "appointment_time must be a time in HH:MM format", errs["appointment_time"])
	assert.Equal(t, "status must be one of: pending, confirmed", errs["status"])
}

func TestValidate_Required(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "appointment_date is required", errs["appointment_date"])
	assert.Equal(t, "appointment_time is required", errs["appointment_time"])
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:00:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", got)

	got, err = ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", got)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}
