package cmd

import "os"

// Error carrying an exit code.
//
// os.Exit() bypasses deferred functions. Returning this through the error
// path lets deferred cleanup run before the process exits in Main.
type errorCode struct {
	code    int
	message string
}

func (err errorCode) Error() string {
	return err.message
}

func (err errorCode) Exit() {
	os.Exit(err.code)
}
