package emitter

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, r io.Reader) ([]string, error) {
	t.Helper()
	var lines []string
	for line, err := range Lines(r) {
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single with newline", "alpha\n", []string{"alpha\n"}},
		{"single without newline", "alpha", []string{"alpha"}},
		{"blank lines kept", "\n\nx\n", []string{"\n", "\n", "x\n"}},
		{"crlf kept", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"whitespace kept", "  a  \n\tb", []string{"  a  \n", "\tb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLines_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20) + "\n"
	got, err := collect(t, strings.NewReader(long+"tail\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, long, got[0])
}

func TestLines_StopEarly(t *testing.T) {
	var got []string
	for line, err := range Lines(strings.NewReader("a\nb\nc\n")) {
		require.NoError(t, err)
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a\n", "b\n"}, got)
}

func TestLines_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("ok\npartial"), iotest.ErrReader(boom))

	got, err := collect(t, r)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"ok\n"}, got, "an unterminated fragment before a failure is not a line")
}
