// Package collector accumulates mapped native tags into canonical
// metadata for one file.
//
// A Collector is fed the native tag stream of every container found in a
// file, in the order the parser produced it. Singleton keys keep the last
// value ingested; list keys keep every value in ingestion order,
// duplicates included. Artist values are also credited to the artists
// list, and several artist values from one container are joined.
// Finalize freezes the result and fills in derived fields.
package collector

import (
	"errors"
	"fmt"

	"github.com/juho05/log"

	"github.com/simonhull/commontags/internal/metrics"
	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/tagmap"
	"github.com/simonhull/commontags/internal/types"
)

// ErrFinalized is returned by Ingest once Finalize has been called.
var ErrFinalized = errors.New("collector already finalized")

// Collector accumulates canonical values. It is not safe for concurrent
// use; create one per file.
type Collector struct {
	mapper *tagmap.Mapper

	singles  map[schema.SingletonKey]any
	lists    map[schema.ListKey][]any
	order    []schema.Key
	warnings []types.Warning

	// Every artist value of the last container that set one.
	credits     []string
	creditVocab types.Vocabulary

	skipPictures   bool
	maxPictureSize int
	quiet          bool

	final *Metadata
}

// Option configures a Collector.
type Option func(*Collector)

// WithSkipPictures drops picture entries instead of storing them.
func WithSkipPictures() Option {
	return func(c *Collector) {
		c.skipPictures = true
	}
}

// WithMaxPictureSize drops pictures larger than n bytes. Zero means no
// limit.
func WithMaxPictureSize(n int) Option {
	return func(c *Collector) {
		c.maxPictureSize = n
	}
}

// WithoutWarnings stops the collector from recording warnings. Ingest
// still returns shape mismatches.
func WithoutWarnings() Option {
	return func(c *Collector) {
		c.quiet = true
	}
}

// New creates a Collector that resolves keys with mapper. A nil mapper
// means tagmap.Default().
func New(mapper *tagmap.Mapper, opts ...Option) *Collector {
	if mapper == nil {
		mapper = tagmap.Default()
	}
	c := &Collector{
		mapper:  mapper,
		singles: make(map[schema.SingletonKey]any),
		lists:   make(map[schema.ListKey][]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ingest maps one native entry and stores its value.
//
// Entries without a canonical key are dropped and Ingest returns nil.
// A value that does not fit its key's shape is skipped, recorded as a
// warning, and returned as a *types.ValueShapeMismatchError; the
// collector stays usable.
func (c *Collector) Ingest(tag types.NativeTag) error {
	if c.final != nil {
		return ErrFinalized
	}

	k, ok := c.mapper.Resolve(tag.Vocabulary, tag.Key)
	if !ok {
		metrics.IncNotMapped(string(tag.Vocabulary))
		log.Tracef("%s %q: not mapped", tag.Vocabulary, tag.Key)
		return nil
	}

	switch v := tagmap.PostMap(tag, k).(type) {
	case []string:
		var errs []error
		for _, s := range v {
			if err := c.store(tag, k, s); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	default:
		return c.store(tag, k, v)
	}
}

// IngestAll ingests every entry, continuing past shape mismatches. It
// returns the mismatches joined into one error.
func (c *Collector) IngestAll(tags []types.NativeTag) error {
	var errs []error
	for _, tag := range tags {
		if err := c.Ingest(tag); err != nil {
			if errors.Is(err, ErrFinalized) {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Collector) store(tag types.NativeTag, k schema.Key, value any) error {
	v, err := schema.Coerce(k, value)
	if errors.Is(err, schema.ErrEmptyValue) {
		return nil
	}
	if err != nil {
		mismatch := &types.ValueShapeMismatchError{
			Key:        k.Name(),
			Vocabulary: tag.Vocabulary,
			NativeKey:  tag.Key,
			Value:      value,
			Reason:     err.Error(),
		}
		c.Warn(types.Warning{Stage: "mapping", Message: mismatch.Error()})
		metrics.IncShapeMismatch(k.Name())
		log.Warnf("skipping tag: %v", mismatch)
		return mismatch
	}

	if pic, ok := v.(types.Picture); ok {
		if c.skipPictures {
			return nil
		}
		if c.maxPictureSize > 0 && len(pic.Data) > c.maxPictureSize {
			c.Warn(types.Warning{
				Stage:   "picture",
				Message: fmt.Sprintf("%s dropped: larger than %d bytes", pic, c.maxPictureSize),
			})
			return nil
		}
	}

	switch key := k.(type) {
	case schema.SingletonKey:
		if _, seen := c.singles[key]; !seen {
			c.order = append(c.order, key)
		}
		c.singles[key] = v
		if key == schema.Artist {
			c.credit(tag.Vocabulary, v)
		}
	case schema.ListKey:
		if _, seen := c.lists[key]; !seen {
			c.order = append(c.order, key)
		}
		c.lists[key] = append(c.lists[key], v)
	}
	metrics.IncIngested(string(tag.Vocabulary))
	return nil
}

// credit records an artist value. A container replaces the credits of
// the containers ingested before it.
func (c *Collector) credit(vocab types.Vocabulary, v any) {
	s, ok := v.(string)
	if !ok {
		return
	}
	if vocab != c.creditVocab {
		c.credits = c.credits[:0]
		c.creditVocab = vocab
	}
	c.credits = append(c.credits, s)
}

// Warn records a diagnostic, such as a container-level parse problem, so
// it is reported with the result.
func (c *Collector) Warn(w types.Warning) {
	if !c.quiet {
		c.warnings = append(c.warnings, w)
	}
}

// Finalize freezes the collected values and computes derived fields. The
// first call builds the result; later calls return the same one.
func (c *Collector) Finalize() *Metadata {
	if c.final != nil {
		return c.final
	}
	c.applyCredits()
	m := &Metadata{
		singles:  c.singles,
		lists:    c.lists,
		order:    c.order,
		warnings: c.warnings,
	}
	derive(m)
	c.final = m
	return m
}

// applyCredits fills artists from the artist values when no container
// tagged artists explicitly. A multi-valued artist tag is joined.
func (c *Collector) applyCredits() {
	if len(c.credits) == 0 {
		return
	}
	if _, ok := c.lists[schema.Artists]; !ok {
		for _, s := range c.credits {
			c.lists[schema.Artists] = append(c.lists[schema.Artists], s)
		}
		c.order = append(c.order, schema.Artists)
	}
	if len(c.credits) > 1 {
		c.singles[schema.Artist] = JoinArtists(c.credits)
	}
}
