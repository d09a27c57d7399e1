package pomodoro

import "fmt"

// CommandType enumerates the inputs the state machine accepts.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdToggle
	CmdReset
	CmdConfigure
	CmdTick
)

func (commandType CommandType) String() string {
	switch commandType {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	case CmdConfigure:
		return "configure"
	case CmdTick:
		return "tick"
	default:
		return fmt.Sprintf("command(%d)", int(commandType))
	}
}

// Command is a single user intent or clock tick. Minutes are read only by CmdConfigure.
type Command struct {
	Type         CommandType
	WorkMinutes  int
	BreakMinutes int
}

// ConfigureCommand builds a CmdConfigure command.
func ConfigureCommand(workMinutes, breakMinutes int) Command {
	return Command{Type: CmdConfigure, WorkMinutes: workMinutes, BreakMinutes: breakMinutes}
}

// Apply is the single state update function.
func Apply(state State, command Command) (State, Outcome, error) {
	switch command.Type {
	case CmdStart:
		return Start(state), Outcome{}, nil
	case CmdPause:
		return Pause(state), Outcome{}, nil
	case CmdToggle:
		return Toggle(state), Outcome{}, nil
	case CmdReset:
		return Reset(state), Outcome{}, nil
	case CmdConfigure:
		next, err := Configure(state, command.WorkMinutes, command.BreakMinutes)
		if err != nil {
			return state, Outcome{}, fmt.Errorf("configure: %w", err)
		}
		return next, Outcome{}, nil
	case CmdTick:
		next, outcome := Tick(state)
		return next, outcome, nil
	default:
		return state, Outcome{}, fmt.Errorf("apply: unknown %s", command.Type)
	}
}
