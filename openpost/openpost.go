// Package openpost tracks the line currently being typed into a post that is
// still open for editing.
package openpost

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxBodyLength is the maximum body length in characters.
const DefaultMaxBodyLength = 2000

var (
	ErrNoPostOpen          = errors.New("no post open")
	ErrLineEmpty           = errors.New("line empty")
	ErrInvalidSpliceCoords = errors.New("invalid splice coordinates")
	ErrSpliceTooLong       = errors.New("splice text too long")
	ErrNewlineInSplice     = errors.New("newline in splice text")
	ErrSpliceNOOP          = errors.New("splice NOOP")
	ErrBodyTooLong         = errors.New("post body too long")
)

// OpenPost is the editing session of one post. Only the last line of the
// body can be edited; committed lines are final.
type OpenPost struct {
	ID    uint64 `json:"id"`
	OP    uint64 `json:"op"`
	Board string `json:"board"`

	// Line is the uncommitted last line of the body.
	Line string `json:"line"`

	// BodyLength is the length of the whole body in characters.
	BodyLength int `json:"body_length"`

	MaxBodyLength int `json:"max_body_length"`
}

// New opens an empty post. A non-positive maxBodyLength selects
// DefaultMaxBodyLength.
func New(id, op uint64, board string, maxBodyLength int) *OpenPost {
	if maxBodyLength <= 0 {
		maxBodyLength = DefaultMaxBodyLength
	}
	return &OpenPost{
		ID:            id,
		OP:            op,
		Board:         board,
		MaxBodyLength: maxBodyLength,
	}
}

// Append adds r to the current line. A newline commits the line instead:
// the committed text is returned with commit set and a new line begins.
func (p *OpenPost) Append(r rune) (line string, commit bool, err error) {
	if p == nil {
		return "", false, ErrNoPostOpen
	}
	if p.BodyLength+1 > p.MaxBodyLength {
		return "", false, ErrBodyTooLong
	}

	p.BodyLength++
	if r == '\n' {
		line, p.Line = p.Line, ""
		return line, true, nil
	}

	p.Line += string(r)
	return "", false, nil
}

// Backspace removes the last character of the current line.
func (p *OpenPost) Backspace() error {
	if p == nil {
		return ErrNoPostOpen
	}
	if p.Line == "" {
		return ErrLineEmpty
	}

	_, size := utf8.DecodeLastRuneInString(p.Line)
	p.Line = p.Line[:len(p.Line)-size]
	p.BodyLength--
	return nil
}

// Splice replaces Len characters of the current line starting at character
// Start with Text.
type Splice struct {
	Start int    `json:"start"`
	Len   int    `json:"len"`
	Text  string `json:"text"`
}

// Splice applies s to the current line and returns the splice to broadcast.
// When the result would exceed the maximum body length the line is trimmed
// at the end and the returned splice has Len -1 with Text holding the whole
// new line, meaning "replace till line end".
func (p *OpenPost) Splice(s Splice) (Splice, error) {
	if p == nil {
		return Splice{}, ErrNoPostOpen
	}

	old := []rune(p.Line)
	textLen := utf8.RuneCountInString(s.Text)

	switch {
	case s.Start < 0, s.Len < 0, s.Start+s.Len > len(old):
		return Splice{}, ErrInvalidSpliceCoords
	case s.Len == 0 && s.Text == "":
		return Splice{}, ErrSpliceNOOP
	case textLen > p.MaxBodyLength:
		return Splice{}, ErrSpliceTooLong
	case strings.ContainsRune(s.Text, '\n'):
		return Splice{}, ErrNewlineInSplice
	}

	line := make([]rune, 0, len(old)-s.Len+textLen)
	line = append(line, old[:s.Start]...)
	line = append(line, []rune(s.Text)...)
	line = append(line, old[s.Start+s.Len:]...)
	p.BodyLength += textLen - s.Len

	if exceeding := p.BodyLength - p.MaxBodyLength; exceeding > 0 {
		line = line[:len(line)-exceeding]
		s.Len = -1
		s.Text = string(line)
		p.BodyLength = p.MaxBodyLength
	}

	p.Line = string(line)
	return s, nil
}

// Close ends the session and returns the uncommitted last line, which still
// has to be parsed when not empty.
func (p *OpenPost) Close() (string, error) {
	if p == nil {
		return "", ErrNoPostOpen
	}
	line := p.Line
	*p = OpenPost{}
	return line, nil
}
