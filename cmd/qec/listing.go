package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qec/internal/hal"
	"qec/internal/payload"
)

var (
	listTitleStyle = lipgloss.NewStyle().Bold(true)
	listNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	listDescStyle  = lipgloss.NewStyle().Faint(true)
)

type listEntry struct {
	name        string
	description string
}

func renderTargetList(r *hal.Registry) string {
	entries := make([]listEntry, 0)
	for _, info := range r.All() {
		entries = append(entries, listEntry{info.Name(), info.Description()})
	}
	return renderPluginList("Registered target systems", entries)
}

func renderPayloadList(r *payload.Registry) string {
	entries := make([]listEntry, 0)
	for _, info := range r.All() {
		entries = append(entries, listEntry{info.Name(), info.Description()})
	}
	return renderPluginList("Registered payload formats", entries)
}

func renderPluginList(title string, entries []listEntry) string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render(title))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}
	width := 0
	for _, e := range entries {
		if len(e.name) > width {
			width = len(e.name)
		}
	}
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(listNameStyle.Render(e.name))
		b.WriteString(strings.Repeat(" ", width-len(e.name)+2))
		b.WriteString(listDescStyle.Render(e.description))
		b.WriteString("\n")
	}
	return b.String()
}
