package id3

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/simonhull/commontags/internal/artwork"
	"github.com/simonhull/commontags/internal/types"
)

// ID3v2.2 ids of the structured frames; the rest decode like their
// four-character counterparts.
var v22Frames = map[string]string{
	"TXX": "TXXX",
	"WXX": "WXXX",
	"COM": "COMM",
	"ULT": "USLT",
	"UFI": "UFID",
	"POP": "POPM",
	"CNT": "PCNT",
	"PIC": "PIC",
	"IPL": "IPLS",
}

// Frames decoded as plain text although their ids do not start with 'T'.
var textLike = map[string]bool{
	"MVNM": true,
	"MVIN": true,
	"GRP1": true,
	"WFED": true, // iTunes writes the podcast feed URL as a text frame
}

func decodeFrame(n *types.Native, vocab types.Vocabulary, id string, data []byte, at int64) {
	kind := id
	if len(id) == 3 {
		if k, ok := v22Frames[id]; ok {
			kind = k
		} else {
			kind = id[:1]
		}
	}

	var err error
	switch {
	case kind == "TXXX" || kind == "WXXX":
		err = userFrame(n, vocab, id, data, kind == "WXXX")
	case kind == "TIPL" || kind == "TMCL" || kind == "IPLS":
		err = involvedPeople(n, vocab, id, data)
	case kind == "COMM" || kind == "USLT":
		err = commentFrame(n, vocab, id, data, kind == "COMM")
	case kind == "SYLT":
		err = syncedLyrics(n, vocab, id, data)
	case kind == "APIC" || kind == "PIC":
		err = pictureFrame(n, vocab, id, data, kind == "PIC")
	case kind == "POPM":
		err = popularimeter(n, vocab, id, data)
	case kind == "PCNT":
		if len(data) < 1 || len(data) > 8 {
			err = fmt.Errorf("invalid counter length %d", len(data))
		} else {
			n.Add(vocab, id, counter(data))
		}
	case kind == "UFID" || kind == "PRIV":
		err = ownerFrame(n, vocab, id, data, kind == "PRIV")
	case kind == "PCST":
		// Presence marks a podcast; the body is four zero bytes.
		n.Add(vocab, id, true)
	case strings.HasPrefix(kind, "T") || textLike[kind]:
		if len(data) < 1 {
			return
		}
		for _, v := range decodeList(data[1:], data[0]) {
			n.Add(vocab, id, v)
		}
	case strings.HasPrefix(kind, "W"):
		if url := latin1(data); url != "" {
			n.Add(vocab, id, url)
		}
	}
	if err != nil {
		n.Warn("metadata", fmt.Sprintf("frame %s: %v", id, err), at)
	}
}

// userFrame decodes TXXX and WXXX: [encoding][description\0][value].
func userFrame(n *types.Native, vocab types.Vocabulary, id string, data []byte, url bool) error {
	if len(data) < 2 {
		return fmt.Errorf("frame too short")
	}
	enc := data[0]
	desc, rest, ok := splitTerminated(data[1:], enc)
	if !ok {
		return fmt.Errorf("description not terminated")
	}
	key := id + ":" + decodeText(desc, enc)
	if url {
		if v := latin1(rest); v != "" {
			n.Add(vocab, key, v)
		}
		return nil
	}
	for _, v := range decodeList(rest, enc) {
		n.Add(vocab, key, v)
	}
	return nil
}

// involvedPeople decodes TIPL, TMCL and IPLS: [encoding] then alternating
// role and name strings.
func involvedPeople(n *types.Native, vocab types.Vocabulary, id string, data []byte) error {
	if len(data) < 1 {
		return fmt.Errorf("frame too short")
	}
	enc := data[0]
	values := splitAll(data[1:], enc)
	for i := 0; i+1 < len(values); i += 2 {
		role, name := values[i], values[i+1]
		if role == "" || name == "" {
			continue
		}
		n.Add(vocab, id+":"+role, name)
	}
	return nil
}

// splitAll splits every terminated string, keeping empty ones so role and
// name stay paired.
func splitAll(data []byte, enc byte) []string {
	var out []string
	for len(data) > 0 {
		head, rest, ok := splitTerminated(data, enc)
		out = append(out, decodeText(head, enc))
		if !ok {
			break
		}
		data = rest
	}
	return out
}

// commentFrame decodes COMM and USLT:
// [encoding][language(3)][description\0][text].
func commentFrame(n *types.Native, vocab types.Vocabulary, id string, data []byte, qualify bool) error {
	if len(data) < 4 {
		return fmt.Errorf("frame too short")
	}
	enc := data[0]
	c := types.Comment{Language: latin1(data[1:4])}
	desc, text, ok := splitTerminated(data[4:], enc)
	if !ok {
		// No description terminator: treat it all as text.
		text, desc = data[4:], nil
	}
	c.Description = decodeText(desc, enc)
	c.Text = decodeText(text, enc)

	key := id
	if qualify && c.Description != "" {
		key = id + ":" + c.Description
	}
	n.Add(vocab, key, c)
	return nil
}

// syncedLyrics decodes SYLT into its lyric lines, dropping the timestamps:
// [encoding][language(3)][timestamp format][content type][description\0]
// then repeated [text\0][timestamp(4)].
func syncedLyrics(n *types.Native, vocab types.Vocabulary, id string, data []byte) error {
	if len(data) < 6 {
		return fmt.Errorf("frame too short")
	}
	enc := data[0]
	c := types.Comment{Language: latin1(data[1:4])}
	desc, rest, ok := splitTerminated(data[6:], enc)
	if !ok {
		return fmt.Errorf("description not terminated")
	}
	c.Description = decodeText(desc, enc)

	var lines []string
	for len(rest) > 0 {
		text, after, ok := splitTerminated(rest, enc)
		if !ok || len(after) < 4 {
			break
		}
		lines = append(lines, strings.TrimLeft(decodeText(text, enc), "\n"))
		rest = after[4:]
	}
	c.Text = strings.Join(lines, "\n")
	n.Add(vocab, id, c)
	return nil
}

// pictureFrame decodes APIC
// ([encoding][MIME\0][type][description\0][data]) and the ID3v2.2 PIC
// frame, which has a three-character image format instead of a MIME type.
func pictureFrame(n *types.Native, vocab types.Vocabulary, id string, data []byte, v22 bool) error {
	if len(data) < 2 {
		return fmt.Errorf("frame too short")
	}
	enc := data[0]
	var mime string
	rest := data[1:]
	if v22 {
		if len(rest) < 3 {
			return fmt.Errorf("frame too short")
		}
		mime, rest = latin1(rest[:3]), rest[3:]
	} else {
		m, after, ok := splitTerminated(rest, encISO88591)
		if !ok {
			return fmt.Errorf("MIME type not null-terminated")
		}
		mime, rest = latin1(m), after
	}
	if len(rest) < 1 {
		return fmt.Errorf("frame truncated after MIME type")
	}
	picType := int(rest[0])
	desc, img, ok := splitTerminated(rest[1:], enc)
	if !ok {
		return fmt.Errorf("description not terminated")
	}
	if len(img) == 0 {
		return fmt.Errorf("no image data")
	}

	pic := types.Picture{
		Format:      mime,
		Type:        artwork.PictureType(picType),
		Description: decodeText(desc, enc),
		Data:        img,
	}
	artwork.Complete(&pic)
	n.Add(vocab, id, pic)
	return nil
}

// popularimeter decodes POPM: [email\0][rating][counter...].
func popularimeter(n *types.Native, vocab types.Vocabulary, id string, data []byte) error {
	email, rest, ok := splitTerminated(data, encISO88591)
	if !ok || len(rest) < 1 {
		return fmt.Errorf("frame too short")
	}
	p := types.Popularimeter{Email: latin1(email), Rating: rest[0]}
	if c := rest[1:]; len(c) > 0 && len(c) <= 8 {
		p.Counter = counter(c)
	}
	n.Add(vocab, id, p)
	return nil
}

// ownerFrame decodes UFID and PRIV: [owner\0][data]. Four-byte PRIV
// payloads, as written for the Windows Media level frames, are read as a
// little-endian integer.
func ownerFrame(n *types.Native, vocab types.Vocabulary, id string, data []byte, private bool) error {
	owner, rest, ok := splitTerminated(data, encISO88591)
	if !ok {
		return fmt.Errorf("owner not terminated")
	}
	key := id + ":" + latin1(owner)
	switch {
	case !private:
		if v := latin1(rest); v != "" {
			n.Add(vocab, key, v)
		}
	case len(rest) == 4:
		n.Add(vocab, key, int(binary.LittleEndian.Uint32(rest)))
	default:
		n.Add(vocab, key, rest)
	}
	return nil
}

// counter decodes a big-endian integer of up to eight bytes.
func counter(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
