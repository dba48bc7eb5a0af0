// Package utils provides small helpers shared by the asset generator:
// terminal message styling, a progress indicator and a generic Min.
package utils

import "github.com/charmbracelet/lipgloss"

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	StatusMessage
	SuccessMessage
	ErrorMessage
	MutedMessage
)

// Styles used across the CLI application.
var (
	DefaultStyle = lipgloss.NewStyle()
	StatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C2FF")).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Faint(true)
)

// DecorateText renders the message in the style associated with the message type.
func DecorateText(s string, msgType MessageType) string {
	switch msgType {
	case StatusMessage:
		return StatusStyle.Render(s)
	case SuccessMessage:
		return SuccessStyle.Render(s)
	case ErrorMessage:
		return ErrorStyle.Render(s)
	case MutedMessage:
		return MutedStyle.Render(s)
	default:
		return DefaultStyle.Render(s)
	}
}
