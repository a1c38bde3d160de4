package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	// ErrTagSourceUnavailable marks failures of the upstream prediction source
	ErrTagSourceUnavailable = goerr.NewTag("source_unavailable")
)

// Sentinel errors for domain operations
var (
	ErrDegenerateInput   = goerr.New("degenerate projection input")
	ErrTableNotFound     = goerr.New("table not found")
	ErrAdvisorDisabled   = goerr.New("mitigation advisor is not configured")
	ErrAlertStateMissing = goerr.New("alert state not found")
)
