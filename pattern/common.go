package pattern

import (
	"log"
)

var (
	// DefaultExitFn is invoked by functions and methods ending in
	// the "OrExit" suffix when an error occurs.
	DefaultExitFn = func(err error) {
		log.Fatalln(err)
	}
)

// loggerOrDefault returns optLogger, or the standard logger if
// optLogger is nil.
func loggerOrDefault(optLogger *log.Logger) *log.Logger {
	if optLogger != nil {
		return optLogger
	}

	return log.Default()
}
