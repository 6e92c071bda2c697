package commontags_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/commontags"
)

func TestParseFiles(t *testing.T) {
	paths := []string{
		writeFile(t, "a.flac", createFLAC(nil, "TITLE=A")),
		writeFile(t, "b.flac", createFLAC(nil, "TITLE=B")),
		writeFile(t, "c.flac", createFLAC(nil, "TITLE=C")),
	}

	results, err := commontags.ParseFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, want := range []string{"A", "B", "C"} {
		assert.Equal(t, paths[i], results[i].Path)
		assert.Equal(t, want, results[i].Common.Text(commontags.KeyTitle))
	}
}

func TestParseFiles_Empty(t *testing.T) {
	results, err := commontags.ParseFiles(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestParseFiles_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeFile(t, "song.flac", createFLAC(nil, "TITLE=x"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := commontags.ParseFiles(ctx, paths)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, results)
}

func TestParseFiles_PartialFailure(t *testing.T) {
	valid := writeFile(t, "ok.flac", createFLAC(nil, "TITLE=x"))

	results, err := commontags.ParseFiles(context.Background(), []string{valid, "/nonexistent/file.flac", valid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/file.flac")
	assert.Nil(t, results)
}

func TestParseFileContext_Cancelled(t *testing.T) {
	path := writeFile(t, "song.flac", createFLAC(nil, "TITLE=x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := commontags.ParseFileContext(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
