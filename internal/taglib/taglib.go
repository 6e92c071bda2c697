// Package taglib is a fallback tag source backed by TagLib (compiled to
// WebAssembly). It covers the containers without a native parser and
// reads TagLib's unified property map.
package taglib

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/juho05/log"
	gotaglib "go.senan.xyz/taglib"

	"github.com/simonhull/commontags/internal/artwork"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// TagLib picks its file type from the extension.
var extensions = map[types.Format]string{
	types.FormatMPEG:     ".mp3",
	types.FormatOgg:      ".ogg",
	types.FormatFLAC:     ".flac",
	types.FormatRIFF:     ".wav",
	types.FormatAIFF:     ".aiff",
	types.FormatMP4:      ".m4a",
	types.FormatAPEv2:    ".ape",
	types.FormatMatroska: ".mka",
	types.FormatASF:      ".wma",
	types.FormatMusepack: ".mpc",
	types.FormatWavPack:  ".wv",
	types.FormatDSF:      ".dsf",
	types.FormatDSDIFF:   ".dff",
}

type parser struct {
	format types.Format
}

func (p *parser) Name() string { return "taglib" }

func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, cleanup, err := localFile(r, size, path, extensions[p.format])
	if err != nil {
		return nil, err
	}
	defer cleanup()

	tags, err := gotaglib.ReadTags(file)
	if err != nil {
		return nil, fmt.Errorf("taglib: read tags: %w", err)
	}

	n := &types.Native{}
	Convert(tags, n)

	props, err := gotaglib.ReadProperties(file)
	if err != nil {
		n.Warn("taglib", "audio properties: "+err.Error(), 0)
	} else {
		n.Audio.Duration = props.Length
		n.Audio.Channels = int(props.Channels)
		n.Audio.SampleRate = int(props.SampleRate)
		n.Audio.Bitrate = int(props.Bitrate) * 1000
	}

	if data, err := gotaglib.ReadImage(file); err == nil {
		addImage(n, data)
	}
	return n, nil
}

// addImage records the picture TagLib reports. TagLib returns the first
// embedded picture without its type, so Type stays empty.
func addImage(n *types.Native, data []byte) {
	if len(data) == 0 {
		return
	}
	pic := types.Picture{Data: data}
	artwork.Complete(&pic)
	n.Add(types.VocabTagLib, "PICTURE", pic)
}

// Convert appends TagLib's property map to n. Keys are visited in sorted
// order and upper-cased; each value of a multi-valued property becomes
// its own tag.
func Convert(tags map[string][]string, n *types.Native) {
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		name := strings.ToUpper(key)
		for _, v := range tags[key] {
			if v != "" {
				n.Add(types.VocabTagLib, name, v)
			}
		}
	}
}

// localFile returns a filesystem path holding the contents of r. TagLib
// only reads files by name, so anything that is not already the named
// regular file is spooled to a temporary one.
func localFile(r io.ReaderAt, size int64, path, ext string) (string, func(), error) {
	if path != "" {
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() && fi.Size() == size {
			return path, func() {}, nil
		}
	}

	if e := filepath.Ext(path); e != "" {
		ext = e
	}
	f, err := os.CreateTemp("", "commontags-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("taglib: spool: %w", err)
	}
	cleanup := func() {
		if err := os.Remove(f.Name()); err != nil {
			log.Warnf("taglib: remove %s: %s", f.Name(), err)
		}
	}
	_, err = io.Copy(f, io.NewSectionReader(r, 0, size))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("taglib: spool: %w", err)
	}
	return f.Name(), cleanup, nil
}

func init() {
	for f := range extensions {
		registry.RegisterFallback(f, &parser{format: f})
	}
}
