package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtromb/automata/catalog"
)

func TestRun(t *testing.T) {
	in := strings.NewReader("flags\nflag\ngs\n\nquit\nnever read\n")
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), catalog.EndsWithGs(), in, &out))

	expect := Prompt + `Result for input "flags": True` + "\n" +
		Prompt + `Result for input "flag": False` + "\n" +
		Prompt + `Result for input "gs": True` + "\n" +
		Prompt + `Result for input "": False` + "\n" +
		Prompt
	assert.Equal(t, expect, out.String())
}

func TestRunEOF(t *testing.T) {
	in := strings.NewReader("333\r\n33")
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), catalog.ThreeThrees(), in, &out))
	assert.Contains(t, out.String(), `Result for input "333": True`)
	assert.Contains(t, out.String(), `Result for input "33": False`)
	assert.Equal(t, 3, strings.Count(out.String(), Prompt))
}

func TestRunSymbolOutOfRange(t *testing.T) {
	in := strings.NewReader("caf\xc3\xa9\nmas\nquit\n")
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), catalog.ContainsMas(), in, &out))
	assert.Contains(t, out.String(), "error: byte 0xc3 at position 3: symbol outside alphabet")
	assert.Contains(t, out.String(), `Result for input "mas": True`)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, catalog.ContainsMas(), strings.NewReader("mas\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSessionSharesInput(t *testing.T) {
	in := strings.NewReader("gs\nquit\nmas\nquit\n")
	var out bytes.Buffer
	session := NewSession(in, &out)
	require.NoError(t, session.Run(context.Background(), catalog.EndsWithGs()))
	require.NoError(t, session.Run(context.Background(), catalog.ContainsMas()))
	assert.Contains(t, out.String(), `Result for input "gs": True`)
	assert.Contains(t, out.String(), `Result for input "mas": True`)
}
