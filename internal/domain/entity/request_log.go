package entity

import "time"

// RequestLog is the per-request document written to the log sink.
type RequestLog struct {
	ID         string
	RequestID  string
	Method     string
	Path       string
	Client     string
	Timestamp  time.Time
	Service    string
	StatusCode *int // Nil until the handler returned.
	Error      string
	Duration   time.Duration
}

// RequestOutcome is applied to a RequestLog once the handler has returned.
type RequestOutcome struct {
	StatusCode  int
	Error       string
	RespondedAt time.Time
	Duration    time.Duration
}

// ErrorRecord is the structured failure record written by the error reporter.
type ErrorRecord struct {
	CorrelationID string
	Code          string
	Message       string
	Error         string
	HTTPStatus    int
	Provider      string
	RequestID     string
	Service       string
	Timestamp     time.Time
}
