package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrSourceNotFound      = goerr.New("source not found")
	ErrInvalidSource       = goerr.New("invalid source ID")
	ErrDigestNotConfigured = goerr.New("digest channel is not configured")
)
