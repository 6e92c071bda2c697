// Package tagreader is a fallback tag source built on dhowden/tag. It is
// tried when a native parser rejects an MP3, MP4, FLAC, Ogg or DSF file,
// and re-emits the library's raw frames in the vocabulary they came from.
package tagreader

import (
	"context"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/dhowden/tag"

	"github.com/simonhull/commontags/internal/artwork"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// dhowden/tag disambiguates repeated frames as "TPE1_0", "TPE1_1", ...
var duplicateSuffix = regexp.MustCompile(`_\d+$`)

type parser struct{}

func (p *parser) Name() string { return "tagreader" }

func (p *parser) Parse(ctx context.Context, r io.ReaderAt, size int64, path string) (*types.Native, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := tag.ReadFrom(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	n := &types.Native{}
	n.Audio.Container = string(m.FileType())
	if err := Convert(m, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Convert appends the raw tags of m to n. Raw keys are visited in sorted
// order since the library returns a map.
func Convert(m tag.Metadata, n *types.Native) error {
	vocab, err := vocabulary(m.Format())
	if err != nil {
		return err
	}
	raw := m.Raw()
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		switch vocab {
		case types.VocabITunes:
			addMP4(n, key, raw)
		case types.VocabVorbis:
			addVorbis(n, key, raw[key])
		default:
			addID3(n, vocab, key, raw[key])
		}
	}
	if vocab == types.VocabVorbis {
		if p := m.Picture(); p != nil {
			n.Add(vocab, "METADATA_BLOCK_PICTURE", picture(p))
		}
	}
	return nil
}

func vocabulary(f tag.Format) (types.Vocabulary, error) {
	switch f {
	case tag.ID3v1:
		return types.VocabID3v1, nil
	case tag.ID3v2_2:
		return types.VocabID3v22, nil
	case tag.ID3v2_3:
		return types.VocabID3v23, nil
	case tag.ID3v2_4:
		return types.VocabID3v24, nil
	case tag.MP4:
		return types.VocabITunes, nil
	case tag.VORBIS:
		return types.VocabVorbis, nil
	}
	return "", fmt.Errorf("unsupported tag format %q", f)
}

func addID3(n *types.Native, vocab types.Vocabulary, key string, value any) {
	id := duplicateSuffix.ReplaceAllString(key, "")
	switch v := value.(type) {
	case string:
		if vocab == types.VocabID3v1 {
			n.Add(vocab, id, v)
			return
		}
		for _, s := range strings.Split(v, "\x00") {
			if s != "" {
				n.Add(vocab, id, s)
			}
		}
	case int:
		n.Add(vocab, id, v)
	case *tag.Comm:
		switch id {
		case "TXXX", "TXX", "WXXX", "WXX":
			n.Add(vocab, id+":"+v.Description, v.Text)
		case "COMM", "COM":
			if v.Description != "" {
				id += ":" + v.Description
			}
			n.Add(vocab, id, types.Comment{Language: v.Language, Description: v.Description, Text: v.Text})
		default:
			n.Add(vocab, id, types.Comment{Language: v.Language, Description: v.Description, Text: v.Text})
		}
	case *tag.UFID:
		n.Add(vocab, id+":"+v.Provider, string(v.Identifier))
	case *tag.Picture:
		n.Add(vocab, id, picture(v))
	}
}

// addMP4 re-emits MP4 atoms. Known atoms keep their type (with the 0xA9
// byte as "©"); anything longer than an atom type is a freeform name,
// which the library stores without its mean.
func addMP4(n *types.Native, key string, raw map[string]any) {
	if strings.HasSuffix(key, "_count") {
		return
	}
	value := raw[key]
	switch key {
	case "trkn", "disk":
		no, _ := value.(int)
		of, _ := raw[key+"_count"].(int)
		n.Add(types.VocabITunes, key, types.NewPartOfSet(no, of))
		return
	case "covr":
		if p, ok := value.(*tag.Picture); ok {
			n.Add(types.VocabITunes, key, picture(p))
		}
		return
	}

	if len(key) == 4 {
		if strings.HasPrefix(key, "\xA9") {
			key = "©" + key[1:]
		}
	} else {
		key = "----:com.apple.iTunes:" + key
	}
	switch v := value.(type) {
	case string, int, bool:
		n.Add(types.VocabITunes, key, v)
	}
}

func addVorbis(n *types.Native, key string, value any) {
	s, ok := value.(string)
	if !ok || strings.EqualFold(key, "metadata_block_picture") {
		return
	}
	n.Add(types.VocabVorbis, strings.ToUpper(key), s)
}

func picture(p *tag.Picture) types.Picture {
	pic := types.Picture{
		Format:      p.MIMEType,
		Type:        p.Type,
		Description: p.Description,
		Data:        p.Data,
	}
	if pic.Format == "" {
		pic.Format = p.Ext
	}
	artwork.Complete(&pic)
	return pic
}

func init() {
	p := &parser{}
	for _, f := range []types.Format{types.FormatMPEG, types.FormatMP4, types.FormatFLAC, types.FormatOgg, types.FormatDSF} {
		registry.RegisterFallback(f, p)
	}
}
