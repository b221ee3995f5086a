package modlog_test

import (
	"fmt"

	modlog "github.com/samothx/ModuleLogger"
)

// Demonstrates constructing a logger, scoping a module to a more verbose
// level, and capturing output in the in-memory buffer.
func Example() {
	logger := modlog.New(modlog.Options{
		DefaultLevel: modlog.LevelInfo,
		Destination:  modlog.DefaultDestination,
	})

	if err := logger.SetDestination(modlog.DestBuffer, nil); err != nil {
		fmt.Println(err)
		return
	}

	logger.SetModuleLevel("payments::audit", modlog.LevelTrace)

	logger.Infof("payments", "charge accepted")
	logger.Tracef("payments::audit", "raw request recorded")
	logger.Tracef("payments", "dropped, payments stays at info")

	if contents, ok := logger.Buffer(); ok {
		fmt.Print(string(contents))
	}
	// Output:
	// INFO  [payments] charge accepted
	// TRACE [payments::audit] raw request recorded
}
