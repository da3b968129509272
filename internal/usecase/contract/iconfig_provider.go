package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	// GetUpcomingAssignmentWindow is the look-ahead window of the
	// upcoming-assignments report.
	GetUpcomingAssignmentWindow() time.Duration
	// GetRecentJoinWindow is the look-back window of the recently-joined report.
	GetRecentJoinWindow() time.Duration
	GetAccessTokenExpiry() time.Duration
	GetReportCacheTTL() time.Duration
}
