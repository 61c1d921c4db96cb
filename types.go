package main

import (
	"log/slog"

	"linkbox/surface"
)

type model struct {
	width          int
	height         int
	help           bool
	surface        *surface.Surface
	grid           *gridContext
	selected       surface.Handle
	renderErr      error
	errorMessage   string
	successMessage string
	config         *Config
	log            *slog.Logger
	copyText       func(string) error
}

type cell struct {
	X, Y int
}
