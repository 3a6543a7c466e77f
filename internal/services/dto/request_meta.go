package dto

import "time"

// RequestMeta is the request-scoped context threaded through service calls.
// It carries what the request logger needs, so services can record every
// branch without reaching back into the transport layer.
type RequestMeta struct {
	Method    string
	Endpoint  string
	IP        string
	UserAgent string
}

// Today returns the current quota window (server-local calendar day).
func Today() string {
	return time.Now().Format("2006-01-02")
}
