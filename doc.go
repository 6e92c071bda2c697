// Package commontags reads the tags of an audio file and normalizes them
// into one canonical key space, whatever container or tagging vocabulary
// they came from.
//
// # Quick Start
//
//	res, err := commontags.ParseFile("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", res.Common.Artist(), res.Common.Text(commontags.KeyTitle))
//	fmt.Printf("Duration: %s\n", res.Audio.Duration)
//
// # Supported Formats
//
//   - MP3 and ADTS AAC: ID3v1, ID3v2.2/2.3/2.4 and APEv2 tags
//   - FLAC and Ogg (Vorbis, Opus, Speex, FLAC): Vorbis comments and pictures
//   - MP4/M4A/M4B: iTunes atoms, including freeform atoms
//   - WAV: RIFF INFO lists and embedded ID3v2
//   - AIFF/AIFF-C: text chunks and embedded ID3v2
//   - Monkey's Audio, WavPack, Musepack: APEv2
//   - ASF, Matroska, DSF, DSDIFF: through the TagLib fallback
//
// # Canonical keys
//
// Every canonical key is either a singleton, holding one value where a
// later tag overwrites an earlier one, or a list, holding every value in
// the order it was read. The multiplicity is carried by the key's type:
//
//	title, _ := commontags.IsSingleton("title")   // true
//	genres := res.Common.Strings(commontags.KeyGenre)
//
// A native tag with no canonical counterpart is dropped. A value that does
// not fit its key, say a non-numeric "bpm", is skipped and reported in
// Result.Warnings; the rest of the file is still read.
//
// # Derived fields
//
// Finalization fills in values implied by others: the artist from the
// artists list ("A, B & C"), the year from the date, totals on track and
// disk positions, a five-star rating, and the cover picture.
//
// # Dispatch
//
// The container is picked from an explicit content type (WithContentType),
// then the file extension, then the file signature. Each format has a
// native parser; when it fails, library-backed fallbacks are tried.
//
// # Error Handling
//
// Unrecognized inputs return *UnsupportedFormatError (wrapping
// ErrNoParser); unreadable containers return *CorruptedFileError. Use
// errors.As to inspect them. ParseStream returns ErrInputTooLarge for
// streams above WithMaxSize.
//
// # Command line
//
// cmd/commontags wraps the library: dump, native, keys, mappings, scan,
// cover, and an HTTP server (serve).
package commontags
