package server

import "time"

const (
	// Write timeout leaves room for the bounded upstream fetch plus
	// serialization of a full season.
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
