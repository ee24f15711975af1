package attendance

import "time"

// Record is one employee-day of attendance. Records are append-only.
type Record struct {
	ID            string
	TenantID      string
	EmployeeID    string
	Date          time.Time
	HoursWorked   float64
	OvertimeHours float64
	CreatedAt     time.Time
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether d falls within the range, ignoring time of day.
func (r DateRange) Contains(d time.Time) bool {
	day := truncateDay(d)
	return !day.Before(truncateDay(r.From)) && !day.After(truncateDay(r.To))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
