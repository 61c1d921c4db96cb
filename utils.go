package main

import "fmt"

// copyPath puts the current connector path on the clipboard as "x,y x,y".
func (m *model) copyPath() {
	path, err := m.surface.Path()
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if err := m.copyText(path.String()); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		m.log.Error("copy path", "error", err)
		return
	}
	m.successMessage = "copied " + path.String()
}
