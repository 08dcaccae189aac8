package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	t.Setenv("ENV", "test")

	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false)
	require.Equal(InfoLevel, l.Level())

	l.Debug("hidden")
	require.Zero(buf.Len())

	l.With("component", "codec").Info("decoded", "format", "U2")

	var record map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &record))
	require.Equal("decoded", record["msg"])
	require.Equal("INFO", record["level"])
	require.Equal("codec", record["component"])
	require.Equal("U2", record["format"])
	require.Contains(record, "ts")

	buf.Reset()
	l.SetLevel(DebugLevel)
	require.Equal(DebugLevel, l.Level())
	l.Debug("visible")
	require.Contains(buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasErr   bool
	}{
		{input: "debug", expected: DebugLevel},
		{input: "INFO", expected: InfoLevel},
		{input: " warn ", expected: WarnLevel},
		{input: "error", expected: ErrorLevel},
		{input: "fatal", expected: FatalLevel},
		{input: "verbose", expected: InfoLevel, hasErr: true},
	}

	require := require.New(t)

	for _, test := range tests {
		level, err := ParseLevel(test.input)
		if test.hasErr {
			require.Error(err)
		} else {
			require.NoError(err)
		}
		require.Equal(test.expected, level, test.input)
	}

	require.Equal("warn", WarnLevel.String())
	require.Equal("Level(9)", Level(9).String())
}

func TestMockLogger(t *testing.T) {
	require := require.New(t)

	m := NewMockLogger()
	m.On("Warn", "rejected", mock.Anything).Return()
	m.On("Level").Return(WarnLevel)

	var l Logger = m
	l.Warn("rejected", "err", "truncated")
	require.Equal(WarnLevel, l.Level())

	m.AssertExpectations(t)
	m.AssertCalled(t, "Warn", "rejected", []any{"err", "truncated"})
}

func TestDefaultLogger(t *testing.T) {
	t.Setenv("ENV", "test")

	require := require.New(t)

	prev := GetLogger()
	t.Cleanup(func() { SetDefault(prev) })
	require.NotNil(prev)

	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, ErrorLevel, false)
	SetDefault(l)
	require.Same(l, GetLogger())

	SetDefault(nil)
	require.Same(l, GetLogger())

	Debug("hidden")
	require.Zero(buf.Len())

	Error("decode failed", "offset", 4)

	var record map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &record))
	require.Equal("decode failed", record["msg"])
	require.Equal("ERROR", record["level"])
	require.InDelta(4, record["offset"], 0)
}
