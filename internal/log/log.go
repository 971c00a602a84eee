// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// SLUGGER_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("SLUGGER_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// CustomHandler formats log messages and writes them to W, or stderr when W
// is nil. Stdout is reserved for command output.
type CustomHandler struct {
	W io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.W
	if w == nil {
		w = os.Stderr
	}
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())
	message := e.Message
	if err, ok := e.Fields["error"]; ok {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	fmt.Fprintf(w, "%s %.1s %s\n", timestamp.Format("2006-01-02 15:04:05"), level, message)
	return nil
}
