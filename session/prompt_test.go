package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePrompterParsesFloat(t *testing.T) {

	var out bytes.Buffer
	p := NewConsolePrompter(strings.NewReader("3.5\n-12\n"), &out)

	v, err := p.Float("Enter x coordinate of marked corner: ")
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	v, err = p.Float("Enter y coordinate of marked corner: ")
	require.NoError(t, err)
	assert.Equal(t, -12.0, v)

	assert.Contains(t, out.String(), "Enter x coordinate of marked corner: ")
}

func TestConsolePrompterTrimsWhitespace(t *testing.T) {

	p := NewConsolePrompter(strings.NewReader("  7.25  \n"), &bytes.Buffer{})

	v, err := p.Float("> ")
	require.NoError(t, err)
	assert.Equal(t, 7.25, v)
}

func TestConsolePrompterInvalidNumber(t *testing.T) {

	p := NewConsolePrompter(strings.NewReader("not-a-number\n"), &bytes.Buffer{})

	_, err := p.Float("> ")
	assert.Error(t, err)
}

func TestConsolePrompterClosedInput(t *testing.T) {

	p := NewConsolePrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Float("> ")
	assert.Error(t, err)
}

// a value on the final line without a trailing newline is still accepted
func TestConsolePrompterNoTrailingNewline(t *testing.T) {

	p := NewConsolePrompter(strings.NewReader("42"), &bytes.Buffer{})

	v, err := p.Float("> ")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}
