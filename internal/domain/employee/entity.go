package employee

import "time"

type Employee struct {
	ID            string
	TenantID      string
	Name          string
	Email         string
	Phone         string
	Department    string
	JobTitle      string
	ContractType  string
	MonthlySalary float64
	WorkHours     float64
	Age           int
	DOB           *time.Time
	Gender        string
	Address       string
	City          string
	State         string
	StartDate     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AgeBucket is one decade of the age distribution, e.g. "30-39".
type AgeBucket struct {
	AgeRange string `json:"age_range"`
	Count    int    `json:"count"`
}
