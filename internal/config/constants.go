// Package config provides centralized constants for the latex-for-typora application.
package config

// Application identity
const (
	AppName    = "LaTeX for Typora"
	AppID      = "io.github.latex-for-typora"
	BinaryName = "latex4typora"
	ConfigDir  = "latex-for-typora"
	ConfigFile = "config.yaml"
	EnvPrefix  = "LATEX4TYPORA_"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "0.3.0"

// Window defaults (logical pixels; Fyne applies the display scale)
const (
	DefaultWindowWidth  = 900
	DefaultWindowHeight = 700
	MinWindowWidth      = 480
	MinWindowHeight     = 360
	MinEditorRows       = 8
)

// Session history
const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 10000
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console" // console, json
)

// Status line messages
const (
	StatusConverted     = "Conversion complete"
	StatusStripped      = "Blank lines removed"
	StatusCopied        = "Copied to clipboard"
	StatusNothingToCopy = "Nothing to copy"
	StatusCleared       = "Cleared"
	StatusCopyFailed    = "Copy failed"
)
