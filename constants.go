package main

type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveVisualTXT
)

const (
	defaultNudgeStep = 10.0
	configFileName   = ".linkbox.yaml"
	envPrefix        = "linkbox"
)

// Terminal cell glyphs.
const (
	glyphCorner     = '+'
	glyphHorizontal = '-'
	glyphVertical   = '|'
	glyphRising     = '/'
	glyphFalling    = '\\'
	glyphEndpoint   = 'o'
)
