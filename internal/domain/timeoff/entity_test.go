package timeoff

import (
	"testing"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
		{StatusPending, Status("Cancelled"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSubmitTimeOffRequest_Validate(t *testing.T) {
	req := SubmitTimeOffRequest{EmployeeID: "e1", LeaveType: "Annual", LeaveFrom: "2024-05-06", LeaveTo: "2024-05-08", Days: 3}
	require.NoError(t, req.Validate())

	entity := req.ToEntity("t1", "Ada")
	assert.Equal(t, StatusPending, entity.Status)
	assert.Equal(t, "Ada", entity.EmployeeName)
	assert.Equal(t, "2024-05-08", entity.LeaveTo.Format("2006-01-02"))

	tests := []struct {
		name  string
		req   SubmitTimeOffRequest
		field string
	}{
		{"missing employee", SubmitTimeOffRequest{LeaveType: "Annual", LeaveFrom: "2024-05-06", LeaveTo: "2024-05-06", Days: 1}, "employee_id"},
		{"missing type", SubmitTimeOffRequest{EmployeeID: "e1", LeaveFrom: "2024-05-06", LeaveTo: "2024-05-06", Days: 1}, "leave_type"},
		{"reversed range", SubmitTimeOffRequest{EmployeeID: "e1", LeaveType: "Sick", LeaveFrom: "2024-05-08", LeaveTo: "2024-05-06", Days: 1}, "leave_to"},
		{"zero days", SubmitTimeOffRequest{EmployeeID: "e1", LeaveType: "Sick", LeaveFrom: "2024-05-06", LeaveTo: "2024-05-06", Days: 0}, "days"},
		{"too many days", SubmitTimeOffRequest{EmployeeID: "e1", LeaveType: "Sick", LeaveFrom: "2024-05-06", LeaveTo: "2024-05-07", Days: 3}, "days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSetStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SetStatusRequest{ID: "r1", Status: "Approved"}).Validate())
	assert.Error(t, (&SetStatusRequest{ID: "r1", Status: "approved"}).Validate())
	assert.Error(t, (&SetStatusRequest{Status: "Rejected"}).Validate())
}
