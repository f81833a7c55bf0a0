package models

import "fmt"

// State is the lifecycle state of a flow. Only completed flows count towards
// a wallet's balance; reverted flows count towards nothing.
type State string

const (
	StateCPL State = "CPL" // completed
	StatePDG State = "PDG" // pending
	StateRVT State = "RVT" // reverted
)

// Valid reports whether the state is one of the known codes.
func (s State) Valid() bool {
	switch s {
	case StateCPL, StatePDG, StateRVT:
		return true
	}
	return false
}

// ParseState validates a raw state code. Codes are case sensitive.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown state: %q", raw)
	}
	return s, nil
}
