package markup

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CommandKind identifies the variant of a hash command.
type CommandKind int

const (
	CommandDice CommandKind = iota
	CommandFlip
	CommandEightBall
	CommandSyncWatch
	CommandPyu
	CommandPostCount
)

var commandNames = [...]string{
	CommandDice:      "dice",
	CommandFlip:      "flip",
	CommandEightBall: "8ball",
	CommandSyncWatch: "sync_watch",
	CommandPyu:       "pyu",
	CommandPostCount: "pcount",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "CommandKind(" + strconv.Itoa(int(k)) + ")"
	}
	return commandNames[k]
}

func parseCommandKind(s string) (CommandKind, bool) {
	for k, name := range commandNames {
		if name == s {
			return CommandKind(k), true
		}
	}
	return 0, false
}

// Command is a hash command result resolved by the server. It is one of
// DiceRoll, CoinFlip, EightBall, SyncWatch, PyuCounter or PostCounter.
type Command interface {
	Kind() CommandKind
}

// DiceRoll holds the face values of a #XdY throw in throw order.
type DiceRoll struct {
	Rolls []uint16
}

// CoinFlip is the result of #flip.
type CoinFlip struct {
	Heads bool
}

// EightBall is the answer to #8ball.
type EightBall struct {
	Answer string
}

// SyncWatch holds hours, minutes, seconds, start and end unix time of #sw.
type SyncWatch struct {
	Params [5]uint64
}

// PyuCounter is the board-wide #pyu count.
type PyuCounter struct {
	Count uint64
}

// PostCounter is the #pcount post count.
type PostCounter struct {
	Count uint64
}

func (DiceRoll) Kind() CommandKind    { return CommandDice }
func (CoinFlip) Kind() CommandKind    { return CommandFlip }
func (EightBall) Kind() CommandKind   { return CommandEightBall }
func (SyncWatch) Kind() CommandKind   { return CommandSyncWatch }
func (PyuCounter) Kind() CommandKind  { return CommandPyu }
func (PostCounter) Kind() CommandKind { return CommandPostCount }

// Commands is an ordered list of resolved commands with a JSON wire format
// of {"type": <kind>, "val": <payload>} objects.
type Commands []Command

type rawCommand struct {
	Type string          `json:"type"`
	Val  json.RawMessage `json:"val"`
}

func (cs Commands) MarshalJSON() ([]byte, error) {
	out := make([]rawCommand, len(cs))
	for i, c := range cs {
		var val any
		switch c := c.(type) {
		case DiceRoll:
			val = c.Rolls
		case CoinFlip:
			val = c.Heads
		case EightBall:
			val = c.Answer
		case SyncWatch:
			val = c.Params
		case PyuCounter:
			val = c.Count
		case PostCounter:
			val = c.Count
		default:
			return nil, fmt.Errorf("command[%d]: unknown command type %T", i, c)
		}

		raw, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("command[%d]: %w", i, err)
		}
		out[i] = rawCommand{Type: c.Kind().String(), Val: raw}
	}
	return json.Marshal(out)
}

func (cs *Commands) UnmarshalJSON(data []byte) error {
	var raw []rawCommand
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Commands, len(raw))
	for i, rc := range raw {
		kind, ok := parseCommandKind(rc.Type)
		if !ok {
			return fmt.Errorf("command[%d]: unknown type %q", i, rc.Type)
		}

		var (
			c   Command
			err error
		)
		switch kind {
		case CommandDice:
			var v DiceRoll
			err = json.Unmarshal(rc.Val, &v.Rolls)
			c = v
		case CommandFlip:
			var v CoinFlip
			err = json.Unmarshal(rc.Val, &v.Heads)
			c = v
		case CommandEightBall:
			var v EightBall
			err = json.Unmarshal(rc.Val, &v.Answer)
			c = v
		case CommandSyncWatch:
			var v SyncWatch
			err = json.Unmarshal(rc.Val, &v.Params)
			c = v
		case CommandPyu:
			var v PyuCounter
			err = json.Unmarshal(rc.Val, &v.Count)
			c = v
		case CommandPostCount:
			var v PostCounter
			err = json.Unmarshal(rc.Val, &v.Count)
			c = v
		}
		if err != nil {
			return fmt.Errorf("command[%d] %s: %w", i, rc.Type, err)
		}
		out[i] = c
	}

	*cs = out
	return nil
}

const (
	MaxDiceRolls = 10
	MaxDiceFaces = 10000
)

var (
	diceMarker = regexp.MustCompile(`^#(\d*)d(\d+)$`)
	syncMarker = regexp.MustCompile(`^#sw(?:(\d{1,2}):)?(\d{1,2}):(\d{1,2})([+-]\d{1,4})?$`)
)

// Marker is a hash command as typed in the post text.
type Marker struct {
	Kind CommandKind

	// Source is the marker without the leading '#', e.g. "2d6".
	Source string

	// Rolls and Faces describe a dice marker.
	Rolls, Faces int

	// Hours, Minutes, Seconds and Offset describe a #sw marker.
	// Offset is in seconds and shifts the start of the watch.
	Hours, Minutes, Seconds uint64
	Offset                  int64
}

// ParseMarker recognizes a whole word as a hash command marker.
func ParseMarker(word string) (Marker, bool) {
	if len(word) < 2 || word[0] != '#' {
		return Marker{}, false
	}
	m := Marker{Source: word[1:]}

	switch m.Source {
	case "flip":
		m.Kind = CommandFlip
		return m, true
	case "8ball":
		m.Kind = CommandEightBall
		return m, true
	case "pyu":
		m.Kind = CommandPyu
		return m, true
	case "pcount":
		m.Kind = CommandPostCount
		return m, true
	}

	if sub := diceMarker.FindStringSubmatch(word); sub != nil {
		rolls := 1
		if sub[1] != "" {
			var err error
			if rolls, err = strconv.Atoi(sub[1]); err != nil {
				return Marker{}, false
			}
		}
		faces, err := strconv.Atoi(sub[2])
		if err != nil || rolls < 1 || rolls > MaxDiceRolls || faces < 1 || faces > MaxDiceFaces {
			return Marker{}, false
		}
		m.Kind = CommandDice
		m.Rolls, m.Faces = rolls, faces
		return m, true
	}

	if sub := syncMarker.FindStringSubmatch(word); sub != nil {
		m.Kind = CommandSyncWatch
		if sub[1] != "" {
			m.Hours, _ = strconv.ParseUint(sub[1], 10, 64)
		}
		m.Minutes, _ = strconv.ParseUint(sub[2], 10, 64)
		m.Seconds, _ = strconv.ParseUint(sub[3], 10, 64)
		if sub[4] != "" {
			m.Offset, _ = strconv.ParseInt(sub[4], 10, 64)
		}
		return m, true
	}

	return Marker{}, false
}

// hasCommand reports whether word is a marker with a resolved command left
// to consume. Markers past the resolved commands render as plain text.
func (p *parser) hasCommand(word string) bool {
	m, ok := ParseMarker(word)
	if !ok {
		return false
	}
	if p.found != nil {
		p.found.Markers = append(p.found.Markers, m)
		return false
	}
	return p.state.CommandIndex < len(p.post.Commands)
}

func (p *parser) nextCommand() Command {
	i := p.state.CommandIndex
	if i >= len(p.post.Commands) {
		invariant(ErrCommandDesync, "command %d requested, %d resolved", i, len(p.post.Commands))
	}
	p.state.CommandIndex++
	return p.post.Commands[i]
}

// renderCommand is the command renderer.
func (p *parser) renderCommand(m Marker, c Command) {
	if c.Kind() != m.Kind {
		invariant(ErrCommandDesync, "marker #%s met a %s result", m.Source, c.Kind())
	}

	var result string
	switch c := c.(type) {
	case DiceRoll:
		if len(c.Rolls) != m.Rolls {
			invariant(ErrCommandDesync, "marker #%s met %d rolls", m.Source, len(c.Rolls))
		}
		result = formatDice(c.Rolls)
	case CoinFlip:
		result = "tails"
		if c.Heads {
			result = "heads"
		}
	case EightBall:
		result = c.Answer
	case PyuCounter:
		result = strconv.FormatUint(c.Count, 10)
	case PostCounter:
		result = strconv.FormatUint(c.Count, 10)
	case SyncWatch:
		p.renderSyncWatch(c)
		return
	}

	p.state.Append(Element("strong"), true)
	p.state.Append(Text("#"+m.Source+" ("+result+")"), false)
	p.state.Ascend()
}

func (p *parser) renderSyncWatch(c SyncWatch) {
	s := p.state
	s.HaveSyncwatch = true
	s.Append(Element("em"), true)
	s.Append(Element("strong",
		"class", "embed syncwatch",
		"data-hour", strconv.FormatUint(c.Params[0], 10),
		"data-min", strconv.FormatUint(c.Params[1], 10),
		"data-sec", strconv.FormatUint(c.Params[2], 10),
		"data-start", strconv.FormatUint(c.Params[3], 10),
		"data-end", strconv.FormatUint(c.Params[4], 10),
	), true)
	s.Append(Text("syncwatch"), false)
	s.Ascend()
	s.Ascend()
}

// formatDice renders "3 + 4 = 7" for several rolls and "5" for one.
func formatDice(rolls []uint16) string {
	if len(rolls) == 1 {
		return strconv.Itoa(int(rolls[0]))
	}

	var (
		b   strings.Builder
		sum int
	)
	for i, r := range rolls {
		if i != 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.Itoa(int(r)))
		sum += int(r)
	}
	b.WriteString(" = ")
	b.WriteString(strconv.Itoa(sum))
	return b.String()
}
