// Package log declares the logging contract shared by the board, the dictionaries, and the command line driver.
package log

// Logger is satisfied by the standard library's *log.Logger.
// Packages depend on this instead of the package-level logger so tests can record or drop output.
type Logger interface {
	// Printf writes the formatted message.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}
