package tui

import "github.com/vito/progrock"

// MsgProgress carries one batch of vertex and log updates.
type MsgProgress struct {
	Update *progrock.StatusUpdate
}

// MsgFeedClosed is sent once the recorder has been closed.
type MsgFeedClosed struct{}
