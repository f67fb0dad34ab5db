// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/fortunevm/config"
)

// newLogger writes to stderr at the display level and to a size-rotated file
// in the data dir at the log level.
func newLogger(cfg *config.Config) logging.Logger {
	consoleCore := logging.NewWrappedCore(
		cfg.GetLogDisplayLevel(),
		os.Stderr,
		logging.Colors.ConsoleEncoder(),
	)
	rw := &lumberjack.Logger{
		Filename:   cfg.LogPath(),
		MaxSize:    cfg.LogMaxSizeMB, // megabytes
		MaxBackups: cfg.LogMaxBackups,
		Compress:   true,
	}
	fileCore := logging.NewWrappedCore(cfg.GetLogLevel(), rw, logging.JSON.FileEncoder())
	return logging.NewLogger("", consoleCore, fileCore)
}
