package util

import (
	"time"

	"github.com/sirupsen/logrus"
)

/*
	usage:

	func foo() {
		defer TimeThis(logger, "foo")()
		// code to measure
	}

*/

// TimeThis starts a timer and returns the func that logs the elapsed
// time under msg once it is called
func TimeThis(log logrus.FieldLogger, msg string) func() {
	start := time.Now()
	return func() {
		log.WithField("took", time.Since(start)).Info(msg)
	}
}
