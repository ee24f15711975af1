package attendance

import "context"

type AttendanceService interface {
	Record(ctx context.Context, tenantID string, req RecordAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, tenantID string, req ListAttendanceRequest) ([]AttendanceResponse, error)
}
