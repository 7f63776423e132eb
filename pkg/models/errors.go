package models

// ValidationError describes an invalid configuration value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid value for " + e.Field + ": " + e.Message
}
