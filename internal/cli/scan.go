package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/juho05/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/commontags"
	"github.com/simonhull/commontags/internal/registry"
)

// watchDebounce is how long a file must stay quiet before it is re-parsed.
const watchDebounce = 500 * time.Millisecond

type scanFailure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

type scanSummary struct {
	Files    int                  `json:"files" yaml:"files"`
	Parsed   int                  `json:"parsed" yaml:"parsed"`
	Warnings int                  `json:"warnings" yaml:"warnings"`
	Formats  map[string]int       `json:"formats" yaml:"formats"`
	Failures []scanFailure        `json:"failures,omitempty" yaml:"failures,omitempty"`
	Results  []*commontags.Result `json:"results,omitempty" yaml:"results,omitempty"`
}

// audioFiles walks root and returns the files whose extension a parser is
// registered for, sorted.
func audioFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("scan: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isAudioFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	sort.Strings(files)
	return files, err
}

func isAudioFile(path string) bool {
	_, err := registry.ForExtension(filepath.Ext(path))
	return err == nil
}

type scanner struct {
	opts     []commontags.Option
	workers  int
	keep     bool
	progress *progressbar.ProgressBar
}

func (s *scanner) run(ctx context.Context, files []string) (*scanSummary, error) {
	sum := &scanSummary{Files: len(files), Formats: map[string]int{}}
	results := make([]*commontags.Result, len(files))
	errs := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range files {
		g.Go(func() error {
			res, err := commontags.ParseFileContext(ctx, path, s.opts...)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			results[i], errs[i] = res, err
			if s.progress != nil {
				_ = s.progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, res := range results {
		if errs[i] != nil {
			sum.Failures = append(sum.Failures, scanFailure{Path: files[i], Error: errs[i].Error()})
			continue
		}
		sum.Parsed++
		sum.Warnings += len(res.Warnings)
		sum.Formats[res.Format.String()]++
		if s.keep {
			sum.Results = append(sum.Results, res)
		}
	}
	return sum, nil
}

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Parse every audio file under a directory and summarize the outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.parseOptions()
		if err != nil {
			return err
		}
		files, err := audioFiles(args[0])
		if err != nil {
			return err
		}

		s := &scanner{opts: opts, workers: cfg.Workers}
		s.keep, _ = cmd.Flags().GetBool("results")
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			s.progress = progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("scanning"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		sum, err := s.run(cmd.Context(), files)
		if err != nil {
			return err
		}
		if err := render(cmd.OutOrStdout(), cfg.Output, sum); err != nil {
			return err
		}

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			return watchTree(cmd.Context(), args[0], func(path string) {
				res, err := commontags.ParseFileContext(cmd.Context(), path, opts...)
				if err != nil {
					log.Warnf("scan: %s: %v", path, err)
					return
				}
				if err := render(cmd.OutOrStdout(), cfg.Output, res); err != nil {
					log.Warnf("scan: render %s: %v", path, err)
				}
			})
		}
		return nil
	},
}

// watchTree calls fn for each audio file under root that is created or
// written, once the file has been quiet for watchDebounce. fn runs on the
// calling goroutine, one path at a time. It returns when ctx is done.
func watchTree(ctx context.Context, root string, fn func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	addDirs := func(dir string) {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				if err := w.Add(path); err != nil {
					log.Warnf("scan: cannot watch %s: %v", path, err)
				}
			}
			return nil
		})
	}
	addDirs(root)
	log.Infof("scan: watching %s", root)

	var (
		mu      sync.Mutex
		pending = map[string]*time.Timer{}
		ready   = make(chan string)
		stopped = make(chan struct{})
	)
	defer func() {
		close(stopped)
		mu.Lock()
		for _, t := range pending {
			t.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-ready:
			mu.Lock()
			delete(pending, path)
			mu.Unlock()
			fn(path)
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					addDirs(event.Name)
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isAudioFile(event.Name) {
				continue
			}

			path := event.Name
			mu.Lock()
			if t, ok := pending[path]; ok {
				t.Reset(watchDebounce)
			} else {
				pending[path] = time.AfterFunc(watchDebounce, func() {
					select {
					case ready <- path:
					case <-stopped:
					}
				})
			}
			mu.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("scan: watcher: %v", err)
		}
	}
}

func init() {
	scanCmd.Flags().Bool("results", false, "include every parsed result in the summary")
	scanCmd.Flags().BoolP("quiet", "q", false, "do not show a progress bar")
	scanCmd.Flags().Bool("watch", false, "keep running and re-parse files as they change")
	rootCmd.AddCommand(scanCmd)
}
