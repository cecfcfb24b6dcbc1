package cli

import "fmt"

// exitError carries a child process exit code that must become the exit
// code of this process.
type exitError struct {
	what string
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.what, e.code)
}
