package service

import "fmt"

var (
	ErrServerIDNotSpecified = fmt.Errorf("Server ID not specified.")
	ErrServerNotFound       = fmt.Errorf("server not found")
	ErrQueryFailed          = fmt.Errorf("query failed")
	ErrPermissionDenied     = fmt.Errorf("permission denied")
	ErrUnknownChart         = fmt.Errorf("unknown chart")
	ErrInvalidThreshold     = fmt.Errorf("invalid long running query threshold")
	ErrExtensionMissing     = fmt.Errorf("system_stats extension is not installed")
)
