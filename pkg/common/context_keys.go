package common

type contextKey string

const (
	TraceIdKey       contextKey = "trace_id"
	TeamIdKey        contextKey = "team_id"
	UserIdKey        contextKey = "user_id"
	UserEmailKey     contextKey = "user_email"
	UserAgentInfoKey contextKey = "user_agent_info"
	WsSemaphoreKey   contextKey = "ws_semaphore"
)

// ConnLocalKeys are re-stored as plain strings before a websocket upgrade.
var ConnLocalKeys = []contextKey{
	TeamIdKey,
	UserIdKey,
	TraceIdKey,
	UserAgentInfoKey,
}
