// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package ymlog centralizes the zerolog logger configuration shared by
// the ddcore-backed packages and the ymlogic command-line tool, so that
// every component logs through the same sink and level.
package ymlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// Logger returns the shared logger.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}

// SetLevel changes the minimum level the shared logger emits.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// SetOutput redirects the shared logger's writer, used by tests that
// want to capture or silence log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).With().Timestamp().Logger().Level(logger.GetLevel())
}
