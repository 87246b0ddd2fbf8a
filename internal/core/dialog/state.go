package dialog

// State is computed once per request from the normalized signal
type State uint8

// States
const (
	StateMenu State = iota
	StateAwaitingSpeech
	StateExecuting
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateAwaitingSpeech:
		return "AWAITING_SPEECH"
	case StateExecuting:
		return "EXECUTING"
	default:
		return "UNKNOWN"
	}
}

// stateTable is indexed by [keypad present][speech present]
var stateTable = [2][2]State{
	{StateMenu, StateExecuting},
	{StateAwaitingSpeech, StateExecuting},
}

// Classify maps presence of keypad input and spoken text to a State
func Classify(sig InboundSignal) State {
	return stateTable[b2i(sig.KeypadInput != nil)][b2i(sig.SpokenText != nil)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
