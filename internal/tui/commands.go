// Package tui provides a terminal user interface for following render progress.
package tui

import (
	"github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// UpdateSource yields the progrock updates a render records, usually a Feed.
type UpdateSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// NextUpdate returns a command that blocks for the next update of src.
// Any read error, io.EOF included, ends the feed.
func NextUpdate(src UpdateSource) tea.Cmd {
	return func() tea.Msg {
		update, err := src.Read()
		if err != nil {
			return MsgFeedClosed{}
		}
		return MsgProgress{Update: update}
	}
}
