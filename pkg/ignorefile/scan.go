package ignorefile

import (
	"strings"
)

type (
	// State is the position of a [Scanner] relative to the managed block.
	State int

	// LineKind classifies a scanned line.
	LineKind int
)

const (
	// Outside means the line is owned by the user.
	Outside State = iota
	// Inside means the line belongs to a managed block.
	Inside
)

const (
	// LineText is any line that is not a marker.
	LineText LineKind = iota
	// LineStart is a [StartMarker] line.
	LineStart
	// LineEnd is an [EndMarker] line.
	LineEnd
)

func (s State) String() string {
	switch s {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	}

	return "unknown"
}

// Line is a single scanned line.
type Line struct {
	// Text is the line without its line terminator.
	Text string
	// Kind classifies the line.
	Kind LineKind
	// State is the scanner state the line was read in, before any transition
	// caused by the line itself.
	State State
	// Opens is true for the start marker that opens a new block. It is false
	// for start markers read while already [Inside] a block.
	Opens bool
}

// Scanner walks the lines of an ignore file and tracks the managed block
// state.
//
// Transitions:
//
//	Outside --StartMarker--> Inside (opens a block)
//	Inside  --StartMarker--> Inside
//	Inside  --EndMarker----> Outside
//	Outside --EndMarker----> Outside
//
// Markers are recognized after trimming surrounding whitespace.
type Scanner struct {
	lines  []string
	line   Line
	pos    int
	blocks int
	state  State
}

// NewScanner creates a [Scanner] for text.
func NewScanner(text string) *Scanner {
	return &Scanner{
		lines: splitLines(text),
		state: Outside,
	}
}

// Scan advances to the next line, which is then available from [Scanner.Line].
// It returns false when there are no more lines.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.lines) {
		return false
	}

	text := s.lines[s.pos]
	s.pos++

	s.line = Line{
		Text:  text,
		Kind:  LineText,
		State: s.state,
	}

	switch strings.TrimSpace(text) {
	case StartMarker:
		s.line.Kind = LineStart
		if s.state == Outside {
			s.line.Opens = true
			s.blocks++
		}

		s.state = Inside

	case EndMarker:
		s.line.Kind = LineEnd
		s.state = Outside
	}

	return true
}

// Line returns the most recent line read by [Scanner.Scan].
func (s *Scanner) Line() Line {
	return s.line
}

// State returns the current state, after the most recent line.
func (s *Scanner) State() State {
	return s.state
}

// Blocks returns the number of blocks opened so far.
func (s *Scanner) Blocks() int {
	return s.blocks
}

// splitLines splits text into lines. A trailing newline does not produce an
// empty final line, and "\r\n" terminators are accepted.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
