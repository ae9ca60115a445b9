package utils

import (
	"errors"
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

type noPanicFunc func()
type noPanicFuncWErr func() error

func (f noPanicFunc) run() {
	defer internalRecover()
	f()
}

func (f noPanicFuncWErr) run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicToErr(e)
		}
	}()
	return f()
}

// SafeAsync runs function in a new goroutine, a panic is logged instead of crashing the process.
func SafeAsync(function noPanicFunc) {
	go function.run()
}

// SafeSync runs function and converts a panic into the returned error.
func SafeSync(function noPanicFuncWErr) error {
	return function.run()
}

func internalRecover() {
	if err := recover(); err != nil {
		log.Errorf("Goroutine failed with panic: %v", err)
		log.Tracef("Stacktrace: %v", string(debug.Stack()))
	}
}

func panicToErr(e interface{}) error {
	log.Errorf("Goroutine failed with panic: %v", e)
	log.Tracef("Stacktrace: %v", string(debug.Stack()))
	switch x := e.(type) {
	case string:
		return errors.New(x)
	case error:
		return x
	default:
		return fmt.Errorf("unknown panic: %v", x)
	}
}
