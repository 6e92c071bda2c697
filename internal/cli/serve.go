package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/juho05/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/commontags"
	"github.com/simonhull/commontags/internal/metrics"
)

type server struct {
	router    chi.Router
	opts      []commontags.Option
	mapper    *commontags.Mapper
	maxUpload int64
	limiter   *ipRateLimiter
}

func newServer(c *Config) (*server, error) {
	opts, err := c.parseOptions()
	if err != nil {
		return nil, err
	}
	m, err := c.mapper()
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = commontags.DefaultMapper()
	}
	metrics.Register()

	s := &server{
		opts:      append(opts, commontags.WithMaxSize(c.MaxUploadSize)),
		mapper:    m,
		maxUpload: c.MaxUploadSize,
		limiter:   newIPRateLimiter(c.RateLimit, max(c.RateLimit/10, 1)),
	}
	s.registerRoutes()
	return s, nil
}

func (s *server) registerRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.limiter.middleware)
		r.Post("/parse", s.handleParse)
		r.Post("/cover", s.handleCover)
		r.Get("/keys", s.handleKeys)
		r.Get("/mappings", s.handleVocabularies)
		r.Get("/mappings/{vocabulary}", s.handleMappings)
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, commontags.GetVersionInfo())
		})
	})

	s.router = r
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// parseBody parses the request body as one audio file. The Content-Type
// header and the "name" query parameter are used as format hints.
func (s *server) parseBody(w http.ResponseWriter, r *http.Request, extra ...commontags.Option) (*commontags.Result, bool) {
	opts := append(s.opts[:len(s.opts):len(s.opts)], extra...)
	if name := r.URL.Query().Get("name"); name != "" {
		opts = append(opts, commontags.WithFileName(name))
	}

	body := http.MaxBytesReader(w, r.Body, s.maxUpload)
	res, err := commontags.ParseStream(r.Context(), body, r.Header.Get("Content-Type"), opts...)
	if err == nil {
		return res, true
	}

	var tooLarge *http.MaxBytesError
	var unsupported *commontags.UnsupportedFormatError
	switch {
	case errors.As(err, &tooLarge), errors.Is(err, commontags.ErrInputTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, commontags.ErrNoParser), errors.As(err, &unsupported):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, context.Canceled):
		log.Tracef("serve: request cancelled: %v", err)
	default:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
	return nil, false
}

func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var extra []commontags.Option
	if flag(q.Get("native")) {
		extra = append(extra, commontags.WithIncludeNative())
	}
	if flag(q.Get("strict")) {
		extra = append(extra, commontags.WithStrict())
	}
	if flag(q.Get("skip_pictures")) {
		extra = append(extra, commontags.WithSkipPictures())
	}

	res, ok := s.parseBody(w, r, extra...)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleCover(w http.ResponseWriter, r *http.Request) {
	size := 0
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid size")
			return
		}
		size = n
	}

	res, ok := s.parseBody(w, r)
	if !ok {
		return
	}
	pic := res.Common.Cover()
	if pic == nil {
		writeError(w, http.StatusNotFound, errNoCover.Error())
		return
	}

	if size > 0 {
		w.Header().Set("Content-Type", "image/jpeg")
	} else {
		w.Header().Set("Content-Type", pic.Format)
	}
	if err := writeCover(w, pic, size, imaging.JPEG); err != nil {
		log.Warnf("serve: write cover: %v", err)
	}
}

func (s *server) handleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, keyRows(r.URL.Query().Get("q")))
}

func (s *server) handleVocabularies(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, v := range s.mapper.Vocabularies() {
		names = append(names, string(v))
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *server) handleMappings(w http.ResponseWriter, r *http.Request) {
	rows, err := mappingRows(s.mapper, chi.URLParam(r, "vocabulary"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func flag(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("serve: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tag reading over HTTP",
	Long: `Serve tag reading over HTTP.

  POST /v1/parse                 parse the request body (?native=1, ?strict=1, ?name=file.mp3)
  POST /v1/cover                 return the cover picture of the request body (?size=N)
  GET  /v1/keys                  list canonical keys (?q=fuzzy query)
  GET  /v1/mappings              list vocabularies
  GET  /v1/mappings/{vocabulary} show a tag map
  GET  /v1/version               version information
  GET  /metrics                  Prometheus metrics
  GET  /healthz                  liveness probe`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newServer(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		srv := &http.Server{
			Addr:              cfg.Listen,
			Handler:           s,
			ReadHeaderTimeout: 10 * time.Second,
		}
		errc := make(chan error, 1)
		go func() {
			log.Infof("serve: listening on %s", cfg.Listen)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Infof("serve: shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("listen", "localhost:8080", "address to listen on")
	serveCmd.Flags().Int("rate-limit", 120, "requests per minute allowed per client")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("rate_limit", serveCmd.Flags().Lookup("rate-limit"))
	rootCmd.AddCommand(serveCmd)
}
