package main

import tea "github.com/charmbracelet/bubbletea"

func (m model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	step := m.config.NudgeStep * float64(speed)
	var dx, dy float64
	switch key {
	case "h", "left", "H", "shift+left":
		dx = -step
	case "l", "right", "L", "shift+right":
		dx = step
	case "k", "up", "K", "shift+up":
		dy = -step
	case "j", "down", "J", "shift+down":
		dy = step
	}
	m.redraw(m.surface.Nudge(m.selected, dx, dy))
	return m, nil
}

func (m model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
