package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	s, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("no newline"))

	s, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", s)
}

func TestGetInt(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("42\n"))

	n, err := GetInt(r, "Give a number", out)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestGetInt_NotANumber(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("forty-two\n"))

	_, err := GetInt(r, "Give a number", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a number")
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	out := &bytes.Buffer{}
	pw, err := GetPassword(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password:")
}
