// Package logging builds the process logger
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultDir  = "logs"
	DefaultFile = "arpg.log"
)

// Options selects where log output goes
// File wins over Console; neither set discards all output
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	Console    io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns the logger and a closer for the underlying file
func Setup(opt Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opt.Level != "" {
		lvl, err := zerolog.ParseLevel(opt.Level)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", opt.Level, err)
		}
		level = lvl
	}

	switch {
	case opt.File != "":
		if err := os.MkdirAll(filepath.Dir(opt.File), 0755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    opt.MaxSizeMB,
			MaxBackups: opt.MaxBackups,
		}
		logger := zerolog.New(rotator).Level(level).With().Timestamp().Logger()
		return logger, rotator, nil

	case opt.Console != nil:
		out := zerolog.ConsoleWriter{Out: opt.Console, TimeFormat: "15:04:05.000", NoColor: true}
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), nopCloser{}, nil
	}

	// Terminal mode without debug: the screen owns stdout
	return zerolog.Nop(), nopCloser{}, nil
}

// DebugFile is the rotating log path used by -debug
func DebugFile() string {
	return filepath.Join(DefaultDir, DefaultFile)
}
