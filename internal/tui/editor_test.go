package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/thelist/internal/listing"
)

func TestEditorSubmitsTrimmedCandidateOnce(t *testing.T) {
	var saved []listing.Item
	e := NewItemEditor(listing.Item{}, func(it listing.Item) tea.Cmd {
		saved = append(saved, it)
		return func() tea.Msg { return nil }
	})

	for _, r := range " Soap " {
		e.Update(keyRunes(string(r)))
	}
	e.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "s" {
		e.Update(keyRunes(string(r)))
	}

	cmd, closeForm := e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.False(t, closeForm)
	require.True(t, e.Saving())
	require.Contains(t, e.View(), "saving...")

	cmd, _ = e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Equal(t, []listing.Item{{Name: "Soap", Title: "s"}}, saved)
}

func TestEditorShiftTabWraps(t *testing.T) {
	e := NewItemEditor(listing.Item{}, nil)
	e.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	e.Update(keyRunes("z"))
	require.Equal(t, listing.Item{Title: "z"}, e.Candidate())
}

func TestEditorEscAsksToClose(t *testing.T) {
	e := NewItemEditor(listing.Item{}, nil)
	_, closeForm := e.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, closeForm)
}

func TestSnackbarClosesOnce(t *testing.T) {
	calls := 0
	s := NewErrorSnackbar("boom", func() { calls++ })
	require.Contains(t, s.View(80), "boom")
	s.Close()
	s.Close()
	require.Equal(t, 1, calls)
}
