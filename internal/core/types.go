package core

const (
	AppName          = "DefendIQ"
	AppUserAgent     = "DefendIQ-Terminal/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/defendiq"
	AppVersion       = "0.1.0"
)

type EntryKind string

const (
	KindCommand  EntryKind = "command"
	KindResponse EntryKind = "response"
)

// HistoryEntry is one line of the terminal display log.
type HistoryEntry struct {
	Kind    EntryKind `json:"kind"`
	Content string    `json:"content"`
}

type Action int

const (
	// ActionNone means there is nothing to display (blank input).
	ActionNone Action = iota
	// ActionAppend means Text should be appended as a response.
	ActionAppend
	// ActionClear means the caller should discard its history.
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Result is what the interpreter hands back for a single input line.
type Result struct {
	Action Action
	Text   string
}

func Append(text string) Result {
	return Result{Action: ActionAppend, Text: text}
}
