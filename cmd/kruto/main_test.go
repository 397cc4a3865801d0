package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const update = `{"deletedChat": 12}`

func TestRun_Types(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"types"}, nil, &out))
	assert.Contains(t, strings.Split(strings.TrimSpace(out.String()), "\n"), "Update")
}

func TestRun_Schema(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"schema", "--type", "Update"}, nil, &out))
	assert.Contains(t, out.String(), `"$defs"`)
	assert.Contains(t, out.String(), `"anyOf"`)
}

func TestRun_DecodeFromStdinAndFile(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"decode", "-"}, strings.NewReader(update), &out))
	first, rest, _ := strings.Cut(out.String(), "\n")
	assert.Equal(t, "UpdateDeletedChat", first)
	assert.JSONEq(t, update, rest)

	path := filepath.Join(t.TempDir(), "u.json")
	require.NoError(t, os.WriteFile(path, []byte(update), 0o600))
	out.Reset()
	require.NoError(t, run([]string{"decode", "--type", "Update", path}, nil, &out))
	assert.True(t, strings.HasPrefix(out.String(), "UpdateDeletedChat\n"))
}

func TestRun_DecodeStrictRejectsUnknownShape(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"decode", "--strict", "-"}, strings.NewReader(`{"somethingNew": true}`), &out)
	assert.Error(t, err)

	out.Reset()
	require.NoError(t, run([]string{"decode", "-"}, strings.NewReader(`{"somethingNew": true}`), &out))
	assert.True(t, strings.HasPrefix(out.String(), "raw (1 raw)\n"), out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(nil, nil, &out), errUsage)
	assert.ErrorIs(t, run([]string{"compile"}, nil, &out), errUsage)
	assert.ErrorIs(t, run([]string{"decode"}, nil, &out), errUsage)
	assert.ErrorContains(t, run([]string{"schema", "--type", "Nope"}, nil, &out), "unknown type")
}
