package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/soniarosenberger/brickring/pkg/errors"
	"github.com/soniarosenberger/brickring/pkg/render"
	"github.com/soniarosenberger/brickring/pkg/ring"
)

// serveCommand creates the serve command: a small HTTP facade over the
// geometry engine for shop tooling that wants JSON or SVG instead of a
// terminal.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the geometry engine over HTTP",
		Long: `Serve a JSON API over the geometry engine.

Endpoints:
  POST /v1/ring?mode=shrink          solve a ring, JSON inputs in, geometry out
  POST /v1/diagrams/{kind}?mode=...  render the "ring" or "brick" SVG for the posted inputs
  GET  /healthz                      liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8710", "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// router builds the chi routing tree with request-ID tagging.
func (c *CLI) router() http.Handler {
	r := chi.NewRouter()
	r.Use(c.requestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/ring", c.handleSolve)
		r.Post("/diagrams/{kind}", c.handleDiagram)
	})

	return r
}

// requestID assigns every request a UUID, echoed in the response header and
// attached to the access log line.
func (c *CLI) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		c.Logger.Debugf("%s %s request_id=%s", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

// solveRequest decodes the posted inputs and the mode query parameter, then
// runs the engine. Mode defaults to shrink-to-fit.
func solveRequest(r *http.Request) (ring.Inputs, ring.Geometry, error) {
	var in ring.Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return ring.Inputs{}, ring.Geometry{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}

	mode := ring.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = ring.ModeShrinkToFit
	}

	g, err := ring.Solve(in, mode)
	return in, g, err
}

func (c *CLI) handleSolve(w http.ResponseWriter, r *http.Request) {
	_, g, err := solveRequest(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(g); err != nil {
		c.Logger.Errorf("encode response: %v", err)
	}
}

func (c *CLI) handleDiagram(w http.ResponseWriter, r *http.Request) {
	in, g, err := solveRequest(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	var svg []byte
	switch kind := chi.URLParam(r, "kind"); kind {
	case "ring":
		svg = render.RingSVG(in, g)
	case "brick":
		svg = render.BrickSVG(in, g)
	default:
		c.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown diagram %q (valid: ring, brick)", kind))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps the error taxonomy onto HTTP statuses: domain violations
// are the client's fault (400), impossible geometry is unprocessable (422),
// anything else is a 500.
func (c *CLI) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidMode, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeImpossibleGeometry:
		status = http.StatusUnprocessableEntity
	}

	c.Logger.Warnf("request failed: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Code:    errors.GetCode(err),
		Message: errors.UserMessage(err),
	})
}
