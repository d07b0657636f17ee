package api

import "time"

// Handler serves a markdown digest from disk. The file is read on every
// request so edits show up without a restart.
type Handler struct {
	path    string
	version string
	now     func() time.Time
}
