package timeoff

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether a request in from may move to to. Only
// Pending requests move, and only to a terminal state.
func CanTransition(from, to Status) bool {
	return from == StatusPending && to.IsTerminal()
}

// Request is a time-off request. EmployeeName is copied from the employee
// at submission.
type Request struct {
	ID           string
	TenantID     string
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	LeaveFrom    time.Time
	LeaveTo      time.Time
	Days         float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
