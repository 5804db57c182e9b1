package errors

import "fmt"

// Error codes for the mission engine.
const (
	// Domain errors
	ErrCodeMissionLookupFailed  = "MISSION_LOOKUP_FAILED"
	ErrCodeProgressLookupFailed = "PROGRESS_LOOKUP_FAILED"
	ErrCodeProgressWriteFailed  = "PROGRESS_WRITE_FAILED"
	ErrCodeUnknownRewardType    = "UNKNOWN_REWARD_TYPE"

	// Database errors
	ErrCodeDatabaseError = "DATABASE_ERROR"

	// Reward errors
	ErrCodeRewardGrantFailed = "REWARD_GRANT_FAILED"

	// Config errors
	ErrCodeConfigInvalid = "CONFIG_INVALID"

	// Producer errors
	ErrCodeStoreMetricFailed = "STORE_METRIC_FAILED"
)

// MissionError represents an error in the mission engine.
type MissionError struct {
	Code    string
	Message string
	Err     error
}

func (e *MissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MissionError) Unwrap() error {
	return e.Err
}

// NewMissionError creates a new MissionError.
func NewMissionError(code, message string, err error) *MissionError {
	return &MissionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Domain-specific error constructors

// ErrMissionLookupFailed wraps a failure to load missions for an event type.
func ErrMissionLookupFailed(eventType string, err error) *MissionError {
	return &MissionError{
		Code:    ErrCodeMissionLookupFailed,
		Message: fmt.Sprintf("failed to load active missions for event type %q", eventType),
		Err:     err,
	}
}

// ErrProgressLookupFailed wraps a failure to read an owner's progress.
func ErrProgressLookupFailed(ownerID int64, missionID string, err error) *MissionError {
	return &MissionError{
		Code:    ErrCodeProgressLookupFailed,
		Message: fmt.Sprintf("failed to load progress for owner %d mission %s", ownerID, missionID),
		Err:     err,
	}
}

// ErrProgressWriteFailed wraps a failure to persist progress. This is a
// correctness-risk event: progress for the cycle may be lost.
func ErrProgressWriteFailed(ownerID int64, missionID string, err error) *MissionError {
	return &MissionError{
		Code:    ErrCodeProgressWriteFailed,
		Message: fmt.Sprintf("failed to persist progress for owner %d mission %s", ownerID, missionID),
		Err:     err,
	}
}

// ErrDatabaseError wraps database errors.
func ErrDatabaseError(operation string, err error) *MissionError {
	return &MissionError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// ErrRewardGrantFailed wraps a reward grant failure.
func ErrRewardGrantFailed(rewardType, rewardValue string, err error) *MissionError {
	return &MissionError{
		Code:    ErrCodeRewardGrantFailed,
		Message: fmt.Sprintf("failed to grant %s reward: %s", rewardType, rewardValue),
		Err:     err,
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(reason string) *MissionError {
	return &MissionError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
		Err:     nil,
	}
}

// ErrStoreMetricFailed wraps a per-store metric computation failure inside a
// producer cycle.
func ErrStoreMetricFailed(storeID int64, metric string, err error) *MissionError {
	return &MissionError{
		Code:    ErrCodeStoreMetricFailed,
		Message: fmt.Sprintf("failed to compute %s for store %d", metric, storeID),
		Err:     err,
	}
}
