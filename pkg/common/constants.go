package common

const (
	// Redis key formats.
	RedisKeyAnalyticsSummary = "analytics:summary:%s"   // user ID
	RedisKeyPlanAlert        = "watchlist:alert:%d:%s" // plan ID, alert kind
)
