package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestMissionError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *MissionError
		wantMsg string
	}{
		{
			name: "error without wrapped error",
			err: &MissionError{
				Code:    ErrCodeConfigInvalid,
				Message: "invalid configuration: empty timezone",
				Err:     nil,
			},
			wantMsg: "CONFIG_INVALID: invalid configuration: empty timezone",
		},
		{
			name: "error with wrapped error",
			err: &MissionError{
				Code:    ErrCodeDatabaseError,
				Message: "database error during query",
				Err:     errors.New("connection timeout"),
			},
			wantMsg: "DATABASE_ERROR: database error during query: connection timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.wantMsg {
				t.Errorf("MissionError.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestMissionError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	err := &MissionError{
		Code:    ErrCodeDatabaseError,
		Message: "test error",
		Err:     originalErr,
	}

	if unwrapped := err.Unwrap(); unwrapped != originalErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, originalErr)
	}

	// errors.Is should see through the wrapper.
	if !errors.Is(err, originalErr) {
		t.Error("errors.Is() did not match the wrapped error")
	}
}

func TestErrProgressWriteFailed(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := ErrProgressWriteFailed(42, "mission-7", cause)

	if err.Code != ErrCodeProgressWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeProgressWriteFailed)
	}
	if !strings.Contains(err.Message, "owner 42") || !strings.Contains(err.Message, "mission-7") {
		t.Errorf("Message = %q, missing owner or mission identifiers", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestErrMissionLookupFailed(t *testing.T) {
	err := ErrMissionLookupFailed("weekly_revenue", errors.New("boom"))

	if err.Code != ErrCodeMissionLookupFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissionLookupFailed)
	}
	if !strings.Contains(err.Message, "weekly_revenue") {
		t.Errorf("Message = %q, missing event type", err.Message)
	}
}

func TestErrStoreMetricFailed(t *testing.T) {
	err := ErrStoreMetricFailed(9, "weekly_revenue", errors.New("query canceled"))

	if err.Code != ErrCodeStoreMetricFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStoreMetricFailed)
	}
	if !strings.Contains(err.Message, "store 9") {
		t.Errorf("Message = %q, missing store ID", err.Message)
	}
}
