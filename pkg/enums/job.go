package enums

import "fmt"

// JobType is the employment type of a posting.
type JobType string

const (
	JobTypeFullTime JobType = "Full-Time"
	JobTypePartTime JobType = "Part-time"
	JobTypeContract JobType = "Contract"
	JobTypeRemote   JobType = "Remote"
)

var validJobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeRemote,
}

// String implements fmt.Stringer.
func (t JobType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known JobType.
func (t JobType) IsValid() bool {
	for _, candidate := range validJobTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseJobType converts raw input into a JobType.
func ParseJobType(value string) (JobType, error) {
	for _, candidate := range validJobTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid job type %q", value)
}

// JobStatus tracks moderation of a posting.
type JobStatus string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusDenied   JobStatus = "denied"
)

var validJobStatuses = []JobStatus{
	JobStatusPending,
	JobStatusApproved,
	JobStatusDenied,
}

// jobStatusTransitions is the allowed moderation flow. Approved and denied
// postings can flip between each other (takedown, appeal) but nothing moves
// back to pending.
var jobStatusTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:  {JobStatusApproved, JobStatusDenied},
	JobStatusApproved: {JobStatusDenied},
	JobStatusDenied:   {JobStatusApproved},
}

// String implements fmt.Stringer.
func (s JobStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known JobStatus.
func (s JobStatus) IsValid() bool {
	for _, candidate := range validJobStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether moving from s to target is allowed.
func (s JobStatus) CanTransition(target JobStatus) bool {
	for _, candidate := range jobStatusTransitions[s] {
		if candidate == target {
			return true
		}
	}
	return false
}

// ParseJobStatus converts raw input into a JobStatus.
func ParseJobStatus(value string) (JobStatus, error) {
	for _, candidate := range validJobStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid job status %q", value)
}
