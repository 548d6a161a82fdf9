package editor

import "fmt"

// argument accumulates a numeric prefix argument.
type argument struct {
	value    int
	negative bool
	set      bool
}

// count returns the argument to pass to a command: 1 when none was
// typed, -1 for a lone minus sign.
func (a *argument) count() int {
	if !a.set {
		return 1
	}
	n := a.value
	if a.negative {
		if n == 0 {
			n = 1
		}
		n = -n
	}
	return n
}

// digit appends d to the argument.
func (a *argument) digit(d int) {
	if a.value > 1_000_000 {
		return
	}
	a.value = a.value*10 + d
	a.set = true
}

// minus starts a negative argument. It only has effect before any digit.
func (a *argument) minus() {
	if a.set && a.value != 0 {
		return
	}
	a.negative = !a.negative
	a.set = true
}

func (a *argument) reset() {
	*a = argument{}
}

// String renders the argument the way readline shows it while typing.
func (a *argument) String() string {
	if a.negative && a.value == 0 {
		return "(arg: -1)"
	}
	return fmt.Sprintf("(arg: %d)", a.count())
}
