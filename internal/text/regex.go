// Package text provides the LaTeX delimiter conversion used by every front end.
package text

import "regexp"

// Pre-compiled delimiter patterns. (?s) lets the lazy body span line breaks.
var (
	// DisplayMathRegex matches \[ ... \] with the shortest possible body.
	DisplayMathRegex = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)

	// InlineMathRegex matches \( ... \) with the shortest possible body.
	InlineMathRegex = regexp.MustCompile(`(?s)\\\((.*?)\\\)`)
)

// delimiterWidth is the byte length of every opening and closing marker.
const delimiterWidth = 2
