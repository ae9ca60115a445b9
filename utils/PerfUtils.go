package utils

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfLog warns when an operation ran longer than threshold and traces it otherwise.
func PerfLog(elapsed time.Duration, threshold time.Duration, operation string) {
	if elapsed > threshold {
		log.Warnf("PERF: %s took %d ms, more than expected (%d ms)", operation, elapsed.Milliseconds(), threshold.Milliseconds())
	} else {
		log.Debugf("PERF: %s took %d ms", operation, elapsed.Milliseconds())
	}
}
