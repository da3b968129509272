package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	UpcomingAssignmentWindow time.Duration
	RecentJoinWindow         time.Duration
	AccessTokenExpiry        time.Duration
	ReportCacheTTL           time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		UpcomingAssignmentWindow: time.Hour * 24 * time.Duration(getEnvAsInt("UPCOMING_ASSIGNMENT_WINDOW_DAYS", 7)),
		RecentJoinWindow:         time.Hour * 24 * time.Duration(getEnvAsInt("RECENT_JOIN_WINDOW_DAYS", 180)), // ~6 months
		AccessTokenExpiry:        time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		ReportCacheTTL:           time.Minute * time.Duration(getEnvAsInt("REPORT_CACHE_TTL_MINUTES", 10)),
	}
}

// GetUpcomingAssignmentWindow returns the look-ahead window for the upcoming-assignments report.
func (c *Config) GetUpcomingAssignmentWindow() time.Duration {
	return c.UpcomingAssignmentWindow
}

// GetRecentJoinWindow returns the look-back window for the recently-joined report.
func (c *Config) GetRecentJoinWindow() time.Duration {
	return c.RecentJoinWindow
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetReportCacheTTL returns how long cached report payloads stay valid.
func (c *Config) GetReportCacheTTL() time.Duration {
	return c.ReportCacheTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
