package commontags

// Option configures how a file is parsed and normalized.
//
// Example:
//
//	res, err := commontags.ParseFile("song.flac",
//	    commontags.WithSkipPictures(),
//	    commontags.WithIncludeNative(),
//	)
type Option func(*parseOptions)

type parseOptions struct {
	contentType    string
	fileName       string
	mapper         *Mapper
	skipPictures   bool
	maxPictureSize int
	includeNative  bool
	strict         bool
	ignoreWarnings bool
	tagLib         bool
	maxSize        int64
}

// DefaultMaxSize bounds the input ParseStream buffers.
const DefaultMaxSize = 1 << 30

func defaultOptions() *parseOptions {
	return &parseOptions{
		tagLib:  true,
		maxSize: DefaultMaxSize,
	}
}

// WithContentType selects the parser by MIME content type instead of by
// extension or signature. A malformed or unknown content type falls back
// to the other hints.
func WithContentType(contentType string) Option {
	return func(o *parseOptions) {
		o.contentType = contentType
	}
}

// WithFileName names a reader's input. Its extension is used as a format
// hint and it is reported as Result.Path.
func WithFileName(name string) Option {
	return func(o *parseOptions) {
		o.fileName = name
	}
}

// WithMapper uses m instead of the default tag maps.
//
// Example:
//
//	m, err := commontags.NewMapper(
//	    commontags.MapKey(commontags.VocabVorbis, "WORK_TITLE", "work"),
//	)
//	res, err := commontags.ParseFile("song.ogg", commontags.WithMapper(m))
func WithMapper(m *Mapper) Option {
	return func(o *parseOptions) {
		o.mapper = m
	}
}

// WithSkipPictures drops embedded pictures.
func WithSkipPictures() Option {
	return func(o *parseOptions) {
		o.skipPictures = true
	}
}

// WithMaxPictureSize drops pictures larger than n bytes with a warning.
// Default is 0 (no limit).
func WithMaxPictureSize(n int) Option {
	return func(o *parseOptions) {
		o.maxPictureSize = n
	}
}

// WithIncludeNative keeps the native tag stream in Result.Native.
func WithIncludeNative() Option {
	return func(o *parseOptions) {
		o.includeNative = true
	}
}

// WithStrict fails the parse on the first tag value that does not fit its
// canonical key, instead of skipping it with a warning.
func WithStrict() Option {
	return func(o *parseOptions) {
		o.strict = true
	}
}

// WithIgnoreWarnings discards warnings from both Result.Warnings and
// Result.Common.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithTagLib enables or disables the TagLib fallback. It is enabled by
// default; formats read only through TagLib fail when it is disabled.
func WithTagLib(enabled bool) Option {
	return func(o *parseOptions) {
		o.tagLib = enabled
	}
}

// WithMaxSize bounds how many bytes ParseStream buffers. Longer streams
// fail. Default is DefaultMaxSize.
func WithMaxSize(n int64) Option {
	return func(o *parseOptions) {
		o.maxSize = n
	}
}
