package nav

// Direction is the direction argument of a command. Zoom commands accept
// only Up and Down.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Op identifies a command.
type Op uint8

const (
	OpPan Op = iota + 1
	OpZoomTime
	OpZoomValue
	OpReset
	OpQuit
)

func (o Op) String() string {
	switch o {
	case OpPan:
		return "pan"
	case OpZoomTime:
		return "zoom-time"
	case OpZoomValue:
		return "zoom-value"
	case OpReset:
		return "reset"
	case OpQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is an already-decoded navigation request.
type Command struct {
	Op  Op
	Dir Direction
}

// Refusal explains why a command left the state unchanged.
type Refusal uint8

const (
	RefusalNone Refusal = iota
	RefusalLowestTimeLevel
	RefusalLowestValueLevel
	RefusalNotEnoughSamples
	RefusalBadCommand
	RefusalRebuild
)

// Result reports the outcome of a command. A refused command carries a
// message suitable for a status line.
type Result struct {
	Applied bool
	Refusal Refusal
	Message string
	Quit    bool
}

func applied() Result { return Result{Applied: true} }

func refused(r Refusal, msg string) Result {
	return Result{Refusal: r, Message: msg}
}
