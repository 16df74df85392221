package playerjs

import "fmt"

// EntryNotFoundError indicates the script contains no recognizable
// decipher entry routine. The player format has likely changed.
type EntryNotFoundError struct{}

func (*EntryNotFoundError) Error() string {
	return "playerjs: decipher entry routine not found"
}

// SubroutineNotFoundError indicates the entry routine calls a transform
// function whose body could not be located in the script.
type SubroutineNotFoundError struct {
	Name string
}

func (e *SubroutineNotFoundError) Error() string {
	return fmt.Sprintf("playerjs: transform function %q not found", e.Name)
}

// UnrecognizedOperationError indicates a transform function matched
// none of the known operation signatures. Proceeding would produce a
// wrong signature, so extraction fails instead.
type UnrecognizedOperationError struct {
	Name string
	Body string
}

func (e *UnrecognizedOperationError) Error() string {
	return fmt.Sprintf("playerjs: transform function %q has unrecognized body %q", e.Name, e.Body)
}
