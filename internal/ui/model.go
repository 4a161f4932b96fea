// Package ui provides state management for ephemeral terminal notifications.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification is a message shown next to the view for a short while.
type Notification string

// ClearNotificationMsg is a Bubbletea message used to reset the visual notification state.
type ClearNotificationMsg struct{}

// Notify returns a tea.Cmd emitting msg as a notification.
func Notify(msg string) tea.Cmd {
	return func() tea.Msg {
		return Notification(msg)
	}
}

// ClearNotification returns a delayed tea.Cmd that clears the current notification.
func ClearNotification(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Model encapsulates the state for displaying non-blocking terminal alerts.
type Model struct {
	notification string
	Lifetime     time.Duration
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = string(msg)
		lifetime := m.Lifetime
		if lifetime == 0 {
			lifetime = 3 * time.Second
		}
		return ClearNotification(lifetime)
	case ClearNotificationMsg:
		m.notification = ""
	}
	return nil
}

// Current returns the notification being shown, if any.
func (m *Model) Current() string {
	return m.notification
}

// View appends the current notification to the given line.
func (m *Model) View(line string, render func(string) string) string {
	if m.notification == "" {
		return line
	}
	return line + "  " + render(m.notification)
}
