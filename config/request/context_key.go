package request

type ContextKey uint8

const (
	ContextType ContextKey = iota
	Handler
	LogEntry
	StartTime
	UID
)
