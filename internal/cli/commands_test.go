package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/commontags"
	"github.com/simonhull/commontags/internal/schema"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestKeyRows(t *testing.T) {
	all := keyRows("")
	assert.Len(t, all, len(schema.AllKeys()))

	rows := keyRows("title")
	require.NotEmpty(t, rows)
	assert.Equal(t, "title", rows[0].Name)
	for _, r := range rows {
		assert.Contains(t, r.Name, "title")
	}

	artists := keyRows("artists")
	require.NotEmpty(t, artists)
	assert.Equal(t, keyRow{Name: "artists", Multiple: true, Shape: "text"}, artists[0])

	assert.Empty(t, keyRows("zzzz"))
}

func TestMappingRows(t *testing.T) {
	m, err := commontags.NewMapper(commontags.MapKey(commontags.VocabVorbis, "AAA_FIRST", "title"))
	require.NoError(t, err)

	rows, err := mappingRows(m, "vorbis")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, mappingRow{Native: "AAA_FIRST", Key: "title"}, rows[0])
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Native, rows[i].Native)
	}

	_, err = mappingRows(m, "klingon")
	var uve *commontags.UnknownVocabularyError
	assert.ErrorAs(t, err, &uve)
}

func TestNativeRows(t *testing.T) {
	rows := nativeRows(commontags.DefaultMapper(), []commontags.NativeTag{
		{Vocabulary: commontags.VocabVorbis, Key: "TITLE", Value: "Song"},
		{Vocabulary: commontags.VocabVorbis, Key: "WHATEVER", Value: 3},
		{Vocabulary: commontags.VocabID3v24, Key: "PRIV:blob", Value: []byte{1, 2, 3}},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, nativeRow{Vocabulary: "vorbis", Key: "TITLE", Canonical: "title", Value: "Song"}, rows[0])
	assert.Equal(t, "", rows[1].Canonical)
	assert.Equal(t, "3", rows[1].Value)
	assert.Equal(t, "<3 bytes>", rows[2].Value)
}

func TestRender(t *testing.T) {
	v := map[string]any{"a": 1, "b": []string{"x"}}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, "json", v))
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    \"x\"\n  ]\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, "yaml", v))
	assert.Equal(t, "a: 1\nb:\n  - x\n", buf.String())
}

func TestWriteCover(t *testing.T) {
	data := pngImage(t, 40, 20)
	pic := &commontags.Picture{Format: "image/png", Data: data}

	var buf bytes.Buffer
	require.NoError(t, writeCover(&buf, pic, 0, 0))
	assert.Equal(t, data, buf.Bytes())

	assert.ErrorIs(t, writeCover(&buf, nil, 0, 0), errNoCover)
	assert.ErrorIs(t, writeCover(&buf, &commontags.Picture{}, 10, 0), errNoCover)

	bad := &commontags.Picture{Format: "image/png", Data: []byte("not an image")}
	assert.Error(t, writeCover(&buf, bad, 10, 0))
}

func TestAudioFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.flac", flacFile(nil, "TITLE=B"))
	writeFile(t, dir, "a.flac", flacFile(nil, "TITLE=A"))
	writeFile(t, dir, "notes.txt", []byte("hello"))
	writeFile(t, dir, "sub/c.MP3", []byte("x"))

	files, err := audioFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.flac"),
		filepath.Join(dir, "b.flac"),
		filepath.Join(dir, "sub", "c.MP3"),
	}, files)
}

func TestScanner_Run(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.flac", flacFile(nil, "TITLE=Good", "TRACKNUMBER=one"))
	bad := writeFile(t, dir, "bad.flac", []byte("this is not a flac stream"))

	s := &scanner{opts: []commontags.Option{commontags.WithTagLib(false)}, workers: 2, keep: true}
	sum, err := s.run(context.Background(), []string{good, bad})
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Files)
	assert.Equal(t, 1, sum.Parsed)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, map[string]int{"flac": 1}, sum.Formats)
	require.Len(t, sum.Failures, 1)
	assert.Equal(t, bad, sum.Failures[0].Path)
	require.Len(t, sum.Results, 1)
	assert.Equal(t, "Good", sum.Results[0].Common.Text(commontags.KeyTitle))
}

func TestScanner_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.flac", flacFile(nil, "TITLE=A"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &scanner{workers: 1}
	_, err := s.run(ctx, []string{path, path, path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatchTree(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu   sync.Mutex
		seen []string
	)
	done := make(chan error, 1)
	go func() {
		done <- watchTree(ctx, dir, func(path string) {
			mu.Lock()
			seen = append(seen, path)
			mu.Unlock()
		})
	}()
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	song := writeFile(t, dir, "song.flac", flacFile(nil, "TITLE=Song"))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1 && seen[0] == song
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchTree_CallsInSequence(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		active  int
		overlap bool
		seen    = map[string]bool{}
	)
	done := make(chan error, 1)
	go func() {
		done <- watchTree(ctx, dir, func(path string) {
			mu.Lock()
			active++
			overlap = overlap || active > 1
			mu.Unlock()

			time.Sleep(50 * time.Millisecond)

			mu.Lock()
			active--
			seen[filepath.Base(path)] = true
			mu.Unlock()
		})
	}()
	time.Sleep(200 * time.Millisecond)

	for _, name := range []string{"a.flac", "b.flac", "c.flac", "d.flac"} {
		writeFile(t, dir, name, flacFile(nil, "TITLE="+name))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 4
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	assert.False(t, overlap, "callbacks ran concurrently")
	mu.Unlock()

	cancel()
	assert.NoError(t, <-done)
}

func TestCommand_Keys(t *testing.T) {
	out := execute(t, "keys", "title", "-o", "json")

	var rows []keyRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "title", rows[0].Name)
}

func TestCommand_Dump(t *testing.T) {
	path := writeFile(t, t.TempDir(), "song.flac", flacFile(nil, "TITLE=Song", "GENRE=Jazz"))
	out := execute(t, "dump", path, "-o", "yaml")

	var got struct {
		Format string         `yaml:"format"`
		Common map[string]any `yaml:"common"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "flac", got.Format)
	assert.Equal(t, "Song", got.Common["title"])
	assert.Equal(t, []any{"Jazz"}, got.Common["genre"])
}

func TestCommand_Version(t *testing.T) {
	out := execute(t, "version", "--short", "-o", "json")
	assert.Equal(t, commontags.Version+"\n", out)
}
