package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzers(t *testing.T) {
	names := make(map[string]bool)
	for _, a := range analyzers() {
		assert.False(t, names[a.Name], "duplicate analyzer %s", a.Name)
		names[a.Name] = true
	}

	for _, name := range []string{"printf", "shadow", "SA1000", "S1000", "nilerr", "bodyclose", "osexit"} {
		assert.True(t, names[name], name)
	}
	for name := range disabledChecks {
		assert.False(t, names[name], name)
	}
}
