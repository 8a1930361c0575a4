package main

import (
	"io"

	"github.com/hupe1980/kmeans3d"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the process logger. When a log file is configured the
// output goes through a rotating writer that the caller must close.
func newLogger(cfg LogConfig, stderr io.Writer) (*kmeans3d.Logger, io.Closer, error) {
	level, err := cfg.level()
	if err != nil {
		return nil, nil, err
	}

	var (
		w      = stderr
		closer io.Closer
	)
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	}

	if cfg.Format == "json" {
		return kmeans3d.NewJSONLogger(w, level), closer, nil
	}
	return kmeans3d.NewTextLogger(w, level), closer, nil
}
