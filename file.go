package commontags

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/juho05/log"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/commontags/internal/collector"
	"github.com/simonhull/commontags/internal/metrics"
	"github.com/simonhull/commontags/internal/registry"
	"github.com/simonhull/commontags/internal/types"
)

// Result is the outcome of parsing one file.
type Result struct {
	// Path to the input, or the WithFileName name for readers
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Detected container format
	Format Format `json:"format" yaml:"format"`

	// Parser that produced the native tags ("flac", "taglib", ...)
	Source string `json:"source" yaml:"source"`

	// Canonical metadata
	Common *Metadata `json:"common" yaml:"common"`

	// Native tags in container order; only with WithIncludeNative
	Native []NativeTag `json:"native,omitempty" yaml:"native,omitempty"`

	// Audio technical properties
	Audio AudioInfo `json:"audio" yaml:"audio"`

	// Non-fatal issues from parsing and mapping
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ParseFile reads and normalizes the tags of the file at path.
//
// Example:
//
//	res, err := commontags.ParseFile("song.flac")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Common.Artist(), res.Common.Text(commontags.KeyTitle))
func ParseFile(path string, opts ...Option) (*Result, error) {
	return ParseFileContext(context.Background(), path, opts...)
}

// ParseFileContext is ParseFile with cancellation. Parsers check ctx
// between containers and atoms, so a cancelled parse stops early.
func ParseFileContext(ctx context.Context, path string, opts ...Option) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	options := applyOptions(opts)
	options.fileName = path
	return parse(ctx, f, stat.Size(), options)
}

// ParseReader reads and normalizes the tags of an in-memory or seekable
// input of the given size. Use WithFileName or WithContentType to hint the
// format.
func ParseReader(ctx context.Context, r io.ReaderAt, size int64, opts ...Option) (*Result, error) {
	return parse(ctx, r, size, applyOptions(opts))
}

// ParseStream buffers a non-seekable input, up to WithMaxSize bytes, and
// parses it. contentType may be empty.
func ParseStream(ctx context.Context, r io.Reader, contentType string, opts ...Option) (*Result, error) {
	options := applyOptions(opts)
	if contentType != "" {
		options.contentType = contentType
	}

	data, err := io.ReadAll(io.LimitReader(r, options.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	if int64(len(data)) > options.maxSize {
		return nil, fmt.Errorf("read stream: %w: exceeds %d bytes", ErrInputTooLarge, options.maxSize)
	}
	return parse(ctx, bytes.NewReader(data), int64(len(data)), options)
}

// ParseFiles parses files concurrently, using up to runtime.NumCPU()
// goroutines. Results are returned in input order. The first failure
// cancels the remaining work and is returned.
//
// Example:
//
//	results, err := commontags.ParseFiles(ctx, paths, commontags.WithSkipPictures())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, res := range results {
//		fmt.Printf("%s: %s\n", res.Format, res.Common.Artist())
//	}
func ParseFiles(ctx context.Context, paths []string, opts ...Option) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Result, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			res, err := ParseFileContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func parse(ctx context.Context, r io.ReaderAt, size int64, o *parseOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	format, err := registry.Resolve(registry.Hint{ContentType: o.contentType, Path: o.fileName}, r, size)
	if err != nil {
		metrics.IncParsed(format.String(), "unsupported")
		return nil, err
	}

	native, source, err := readNative(ctx, r, size, format, o)
	if err != nil {
		metrics.IncParsed(format.String(), "error")
		return nil, err
	}
	native.Path = o.fileName
	native.Format = format
	native.Size = size

	res, err := normalize(native, o)
	if err != nil {
		metrics.IncParsed(format.String(), "error")
		return nil, err
	}
	res.Source = source

	metrics.IncParsed(format.String(), "ok")
	metrics.ObserveParse(format.String(), time.Since(start))
	return res, nil
}

// readNative runs the parsers for format in order until one succeeds.
// A success after a failure is reported as a warning.
func readNative(ctx context.Context, r io.ReaderAt, size int64, format Format, o *parseOptions) (*types.Native, string, error) {
	candidates := parsersFor(format, o.tagLib)
	if len(candidates) == 0 {
		return nil, "", &UnsupportedFormatError{
			Path:     o.fileName,
			Reason:   fmt.Sprintf("no parser available for format %s", format),
			NoParser: true,
		}
	}

	var errs []error
	for _, p := range candidates {
		n, err := p.Parse(ctx, r, size, o.fileName)
		if err == nil {
			for _, prev := range errs {
				n.Warn("parse", prev.Error(), 0)
			}
			return n, p.Name(), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		log.Tracef("%s: parser %s failed: %v", o.fileName, p.Name(), err)
		errs = append(errs, fmt.Errorf("%s parser: %w", p.Name(), err))
	}
	return nil, "", fmt.Errorf("parse %s: %w", format, errors.Join(errs...))
}

// parsersFor returns the parsers for format with TagLib last, or without
// it when disabled.
func parsersFor(format Format, tagLib bool) []registry.Parser {
	var out, last []registry.Parser
	for _, p := range registry.Parsers(format) {
		if p.Name() == "taglib" {
			if tagLib {
				last = append(last, p)
			}
			continue
		}
		out = append(out, p)
	}
	return append(out, last...)
}

func normalize(n *types.Native, o *parseOptions) (*Result, error) {
	var copts []collector.Option
	if o.skipPictures {
		copts = append(copts, collector.WithSkipPictures())
	}
	if o.maxPictureSize > 0 {
		copts = append(copts, collector.WithMaxPictureSize(o.maxPictureSize))
	}
	if o.ignoreWarnings {
		copts = append(copts, collector.WithoutWarnings())
	}
	c := collector.New(o.mapper, copts...)

	for _, w := range n.Warnings {
		c.Warn(w)
	}
	for _, tag := range n.Tags {
		err := c.Ingest(tag)
		var mismatch *ValueShapeMismatchError
		if o.strict && errors.As(err, &mismatch) {
			return nil, fmt.Errorf("%s: %w", n.Path, err)
		}
	}
	meta := c.Finalize()

	res := &Result{
		Path:     n.Path,
		Format:   n.Format,
		Common:   meta,
		Audio:    n.Audio,
		Warnings: meta.Warnings(),
	}
	if o.includeNative {
		res.Native = n.Tags
	}
	return res, nil
}
