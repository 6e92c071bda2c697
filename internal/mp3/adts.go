package mp3

import (
	"context"
	"fmt"
	"time"

	binutil "github.com/simonhull/commontags/internal/binary"
	"github.com/simonhull/commontags/internal/types"
)

var adtsSampleRates = []int{
	96000, 88200, 64000, 48000, 44100, 32000, 24000, 22050,
	16000, 12000, 11025, 8000, 7350,
}

var aacProfiles = []string{"AAC Main", "AAC LC", "AAC SSR", "AAC LTP"}

// parseADTS reads the first ADTS header and counts frames to the end of
// the audio. Every frame carries 1024 samples.
func parseADTS(ctx context.Context, sr *binutil.SafeReader, start, end int64, n *types.Native) error {
	hdr := make([]byte, 7)
	if err := sr.ReadAt(hdr, start, "ADTS header"); err != nil {
		return err
	}
	if hdr[0] != 0xFF || hdr[1]&0xF6 != 0xF0 {
		return fmt.Errorf("invalid ADTS sync")
	}
	profile := hdr[2] >> 6
	srIdx := int(hdr[2]>>2) & 0xF
	if srIdx >= len(adtsSampleRates) {
		return fmt.Errorf("invalid ADTS sample rate index %d", srIdx)
	}
	channels := int(hdr[2]&0x1)<<2 | int(hdr[3]>>6)

	n.Audio.Codec = aacProfiles[profile]
	n.Audio.Container = "ADTS"
	n.Audio.SampleRate = adtsSampleRates[srIdx]
	n.Audio.Channels = channels

	var frames int64
	for off := start; off+7 <= end; frames++ {
		if frames%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := sr.ReadAt(hdr, off, "ADTS header"); err != nil {
			return err
		}
		if hdr[0] != 0xFF || hdr[1]&0xF6 != 0xF0 {
			break
		}
		length := int64(hdr[3]&0x3)<<11 | int64(hdr[4])<<3 | int64(hdr[5]>>5)
		if length < 7 {
			break
		}
		off += length
	}

	if frames > 0 {
		seconds := float64(frames*1024) / float64(n.Audio.SampleRate)
		n.Audio.Duration = time.Duration(seconds * float64(time.Second))
		n.Audio.Bitrate = int(float64(end-start) * 8 / seconds)
	}
	return nil
}
