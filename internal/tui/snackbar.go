package tui

import "github.com/charmbracelet/lipgloss"

// ErrorSnackbar shows a single error message until closed.
type ErrorSnackbar struct {
	message string
	onClose func()
}

func NewErrorSnackbar(message string, onClose func()) *ErrorSnackbar {
	return &ErrorSnackbar{message: message, onClose: onClose}
}

func (s *ErrorSnackbar) Message() string { return s.message }

// Close runs the close callback once.
func (s *ErrorSnackbar) Close() {
	if s.onClose != nil {
		fn := s.onClose
		s.onClose = nil
		fn()
	}
}

func (s *ErrorSnackbar) View(width int) string {
	text := "✕ " + s.message + "   [x] dismiss"
	style := snackbarStyle
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return lipgloss.NewStyle().MarginTop(1).Render(style.Render(text))
}
