package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/emdf-go/emdf/recfmt"
	"github.com/emdf-go/emdf/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecKind_Valid(t *testing.T) {
	k, err := recKind("day")
	require.NoError(t, err)
	assert.Equal(t, recfmt.KindDay, k)

	k, err = recKind("bargain")
	require.NoError(t, err)
	assert.Equal(t, recfmt.KindBargain, k)
}

func TestRecKind_Unknown(t *testing.T) {
	_, err := recKind("weekly")
	assert.Error(t, err)
}

func buildDayStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "days.dat")

	s, err := store.Create[recfmt.Day](path, 1)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	return path
}

func TestExportJSON_EmptyStore(t *testing.T) {
	path := buildDayStore(t)
	s, err := store.Open[recfmt.Day](path)
	require.NoError(t, err)
	defer s.Close()

	var buf bytes.Buffer
	require.NoError(t, exportJSON(s, nil, &buf))
	assert.Contains(t, buf.String(), "[]")
}

func TestExportCSV_EmptyStore_WritesHeaderOnly(t *testing.T) {
	path := buildDayStore(t)
	s, err := store.Open[recfmt.Day](path)
	require.NoError(t, err)
	defer s.Close()

	var buf bytes.Buffer
	require.NoError(t, exportCSV(s, nil, &buf))
	assert.Equal(t, "id\n", buf.String())
}

func TestWrapCompress_None(t *testing.T) {
	var buf bytes.Buffer
	w, closeFn, err := wrapCompress(&buf, "none")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.Equal(t, "hi", buf.String())
}

func TestWrapCompress_Unknown(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := wrapCompress(&buf, "brotli")
	assert.Error(t, err)
}

func TestCreateGeneric_WritesFileOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.dat")
	require.NoError(t, createGeneric[recfmt.Day](path, 1))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
