// SPDX-License-Identifier: MIT

package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/layoffgraph/logger"
	"github.com/katalvlaran/layoffgraph/logger/memory"
)

func TestFacade_FansOutToAllBackends(t *testing.T) {
	a, b := memory.New(), memory.New()
	logger.Init(a, b)
	t.Cleanup(func() { logger.Init() })

	logger.Info("loaded", "rows", 3)
	logger.Warn("skipped", "line", 7)
	logger.Debug("detail")
	logger.Error("boom")

	for _, m := range []*memory.Logger{a, b} {
		entries := m.Entries()
		if assert.Len(t, entries, 4) {
			assert.Equal(t, memory.Entry{Level: "info", Message: "loaded", Keyvals: []any{"rows", 3}}, entries[0])
			assert.Equal(t, "warn", entries[1].Level)
			assert.Equal(t, []any{"line", 7}, entries[1].Keyvals)
			assert.Equal(t, "debug", entries[2].Level)
			assert.Equal(t, "error", entries[3].Level)
		}
	}
}

func TestFacade_NoBackends(t *testing.T) {
	logger.Init()
	assert.NotPanics(t, func() {
		logger.Info("nobody listens")
		logger.Fatal("still nobody")
	})
}
