// Package fixture serves a read-only task endpoint for offline development.
// It has the same shape as the public mock endpoint the client fetches.
package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/idilsaglam/todos/internal/model"
)

// Sample is served when no fixture file exists.
var Sample = []model.Task{
	{ID: "1", Title: "Buy milk", IsDone: false},
	{ID: "2", Title: "Read a book", IsDone: true},
	{ID: "3", Title: "Write the weekly report", IsDone: false},
}

// NewRouter returns the fixture routes: GET / and GET /todos.
func NewRouter(tasks []model.Task, logger *log.Logger) http.Handler {
	if tasks == nil {
		tasks = []model.Task{}
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	list := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logger.Error("encode fixture", "err", err)
		}
	}
	r.Get("/", list)
	r.Get("/todos", list)
	return r
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start).Round(time.Microsecond),
				"req_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Serve runs the fixture server on addr until ctx is done.
func Serve(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("fixture endpoint listening", "url", "http://"+addr+"/todos")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
