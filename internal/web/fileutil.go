package web

import (
	"fmt"
	"strings"
)

// LineContext is a target line from an analyzed command buffer plus two
// lines of surrounding context on either side, used by editor
// integrations to render a diagnostic's Target span without re-sending
// the whole buffer.
type LineContext struct {
	Before2    string `json:"before2,omitempty"`
	Before1    string `json:"before1,omitempty"`
	Target     string `json:"target"`
	After1     string `json:"after1,omitempty"`
	After2     string `json:"after2,omitempty"`
	LineNumber int    `json:"line_number"`
	HasBefore2 bool   `json:"has_before2"`
	HasBefore1 bool   `json:"has_before1"`
	HasAfter1  bool   `json:"has_after1"`
	HasAfter2  bool   `json:"has_after2"`
	ErrorMsg   string `json:"error,omitempty"`
}

// GetLineContext slices the 1-based lineNumber out of content, the same
// buffer a diagnostic's Target span was computed against, with up to
// two lines of context before and after it.
func GetLineContext(content string, lineNumber int) LineContext {
	result := LineContext{LineNumber: lineNumber}

	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("line %d out of range (buffer has %d lines)", lineNumber, len(lines))
		return result
	}

	result.Target = lines[lineNumber-1]

	if lineNumber > 2 {
		result.Before2 = lines[lineNumber-3]
		result.HasBefore2 = true
	}
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}
	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}
	if lineNumber+1 < len(lines) {
		result.After2 = lines[lineNumber+1]
		result.HasAfter2 = true
	}

	return result
}
