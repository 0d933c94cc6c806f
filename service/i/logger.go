package i

// Logger defines the leveled logging methods used across the application.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
