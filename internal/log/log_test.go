// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{W: &buf}

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := h.HandleLog(&log.Entry{Level: log.WarnLevel, Message: "cache stale", Timestamp: ts})
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-02 03:04:05 W cache stale\n", buf.String())

	buf.Reset()
	_ = h.HandleLog(&log.Entry{
		Level:     log.ErrorLevel,
		Message:   "load failed",
		Timestamp: ts,
		Fields:    log.Fields{"error": errors.New("boom")},
	})
	assert.Equal(t, "2026-01-02 03:04:05 E load failed: boom\n", buf.String())
}

func TestInitLogger(t *testing.T) {
	t.Setenv("SLUGGER_LOG", "debug")
	InitLogger()
	l, ok := log.Log.(*log.Logger)
	if assert.True(t, ok) {
		assert.Equal(t, log.DebugLevel, l.Level)
	}

	t.Setenv("SLUGGER_LOG", "bogus")
	InitLogger()
	l = log.Log.(*log.Logger)
	assert.Equal(t, log.ErrorLevel, l.Level)
}
