package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestInitLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := initLogger(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Str("city", "Boston").Msg("visible")
	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "Boston")
	assert.Contains(t, out, "WARN")
}
