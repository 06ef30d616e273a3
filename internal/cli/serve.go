package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-formbuilder/components/sampleforms"
	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/library"
)

const shutdownTimeout = 10 * time.Second

func (a *app) cmdServe() *cli.Command {
	var addr, basePath string
	var seed bool

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve saved forms over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Listen address (default from config)",
				Sources:     cli.EnvVars("FORMBUILDER_ADDR"),
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "base-path",
				Usage:       "Path prefix for all routes",
				Sources:     cli.EnvVars("FORMBUILDER_BASE_PATH"),
				Destination: &basePath,
			},
			&cli.BoolFlag{
				Name:        "seed",
				Usage:       "Install the bundled samples before serving",
				Destination: &seed,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			if basePath == "" {
				basePath = a.cfg.Server.BasePath
			}

			return a.withLibrary(func(lib library.Store) error {
				if seed || a.cfg.Library.Memory {
					ids, err := library.Seed(ctx, lib)
					if err != nil {
						return err
					}
					logging.Default().Info("Library seeded", "forms", ids)
				}

				router, pattern, err := newRouter(lib, basePath)
				if err != nil {
					return err
				}
				server := &http.Server{
					Addr:              addr,
					Handler:           router,
					ReadHeaderTimeout: 30 * time.Second,
				}
				logging.Default().Info("Starting HTTP server", "addr", addr, "forms", pattern)
				return runServer(ctx, server)
			})
		},
	}
}

func newRouter(lib library.Store, basePath string) (http.Handler, string, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	pattern, err := sampleforms.New(sampleforms.WithStore(lib)).RegisterRoutes(r, basePath)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to mount forms routes")
	}
	return r, pattern, nil
}

// runServer serves until ctx is cancelled or a termination signal arrives,
// then shuts down gracefully.
func runServer(ctx context.Context, server *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "failed to start server", goerr.V("addr", server.Addr))
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logging.Default().Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server gracefully")
		}
		return nil
	})
	return g.Wait()
}

func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
