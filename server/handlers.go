package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/heuristic"
	"github.com/katalvlaran/gridsearch/solver"
)

// SearchRequest is the body of POST /v1/search. Omitted fields take the
// defaults: astar, Manhattan ("m"), weight 1, 4-directional movement,
// electric mover and the server's expansion ceiling.
type SearchRequest struct {
	Map           gridgraph.MapDoc `json:"map"`
	Algorithm     string           `json:"algorithm"`
	Heuristic     string           `json:"heuristic"`
	Weight        float64          `json:"weight"`
	Movement      int              `json:"movement"`
	Mover         string           `json:"mover"`
	MaxExpansions int              `json:"max_expansions"`
	Render        bool             `json:"render"`
}

// SearchResponse is the reply to a completed search. Path coordinates are
// [x, y] pairs, start first.
type SearchResponse struct {
	Algorithm  string        `json:"algorithm"`
	Found      bool          `json:"found"`
	Actions    []core.Action `json:"actions"`
	Path       [][2]int      `json:"path"`
	Cost       float64       `json:"cost"`
	Expanded   int           `json:"expanded"`
	Iterations int           `json:"iterations"`
	ElapsedMs  float64       `json:"elapsed_ms"`
	Rendered   string        `json:"rendered,omitempty"`
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"algorithms": solver.Algorithms(),
		"heuristics": []string{"m", "c", "e", "b"},
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	var body SearchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, body.Algorithm, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	ctx, span := s.tracer.Start(c.Request.Context(), "server.search",
		trace.WithAttributes(
			attribute.String("algorithm", body.Algorithm),
			attribute.String("heuristic", body.Heuristic),
			attribute.Int("rows", body.Map.Rows),
			attribute.Int("cols", body.Map.Cols),
			attribute.Float64("weight", body.Weight),
		),
	)
	defer span.End()

	req, m, err := s.prepare(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		s.fail(c, body.Algorithm, err)
		return
	}

	plan, err := solver.Solve(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		s.fail(c, req.Algorithm, err)
		return
	}

	algo := plan.Algorithm
	s.metrics.duration.WithLabelValues(algo).Observe(plan.Elapsed.Seconds())
	s.metrics.expanded.WithLabelValues(algo).Observe(float64(plan.Expanded))
	result := resultNoPath
	if plan.Found {
		result = resultFound
		s.metrics.planSteps.WithLabelValues(algo).Observe(float64(len(plan.Actions)))
	}
	s.metrics.searches.WithLabelValues(algo, result).Inc()

	span.SetAttributes(
		attribute.Bool("found", plan.Found),
		attribute.Int("expanded", plan.Expanded),
		attribute.Int("iterations", plan.Iterations),
		attribute.Float64("cost", plan.Cost),
	)
	span.SetStatus(codes.Ok, result)

	if s.log.Enabled(ctx, slog.LevelDebug) {
		s.log.DebugContext(ctx, "search done",
			slog.String("algorithm", algo),
			slog.Bool("found", plan.Found),
			slog.Int("expanded", plan.Expanded),
			slog.Duration("elapsed", plan.Elapsed),
		)
	}

	resp := SearchResponse{
		Algorithm:  algo,
		Found:      plan.Found,
		Actions:    plan.Actions,
		Path:       make([][2]int, len(plan.Path)),
		Cost:       plan.Cost,
		Expanded:   plan.Expanded,
		Iterations: plan.Iterations,
		ElapsedMs:  float64(plan.Elapsed.Microseconds()) / 1000,
	}
	if resp.Actions == nil {
		resp.Actions = []core.Action{}
	}
	for i, p := range plan.Path {
		resp.Path[i] = [2]int{p.X, p.Y}
	}
	if body.Render {
		resp.Rendered = m.Render(plan.Path)
	}
	c.JSON(http.StatusOK, resp)
}

// prepare validates body against the service limits and converts it into a
// solver request.
func (s *Server) prepare(body SearchRequest) (solver.Request, *gridgraph.Map, error) {
	var req solver.Request
	if !body.Map.Fits(s.cfg.MaxCells) {
		w, h := body.Map.Size()
		return req, nil, fmt.Errorf("%w: %d×%d > %d cells", ErrMapTooLarge, w, h, s.cfg.MaxCells)
	}
	m, err := body.Map.Build()
	if err != nil {
		return req, nil, err
	}

	metric := heuristic.Manhattan
	if body.Heuristic != "" {
		if metric, err = heuristic.Parse(body.Heuristic); err != nil {
			return req, nil, err
		}
	}
	movement := body.Movement
	if movement == 0 {
		movement = 4
	}
	conn, err := gridgraph.ParseConnectivity(movement)
	if err != nil {
		return req, nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	mover, err := gridgraph.ParseMover(body.Mover)
	if err != nil {
		return req, nil, err
	}

	limit := s.cfg.MaxExpansions
	if body.MaxExpansions < 0 {
		return req, nil, fmt.Errorf("%w: max_expansions cannot be negative", ErrBadRequest)
	}
	if body.MaxExpansions > 0 && (limit == 0 || body.MaxExpansions < limit) {
		limit = body.MaxExpansions
	}

	return solver.Request{
		Map:           m,
		Algorithm:     body.Algorithm,
		Metric:        metric,
		Weight:        body.Weight,
		Grid:          gridgraph.GridOptions{Conn: conn, Mover: mover},
		MaxExpansions: limit,
	}, m, nil
}

// fail writes err with the status its class maps to and counts it.
func (s *Server) fail(c *gin.Context, algorithm string, err error) {
	status, result := classify(err)
	if algorithm == "" {
		algorithm = solver.AStar
	}
	if _, lerr := solver.Lookup(algorithm); lerr != nil {
		algorithm = "unknown"
	}
	s.metrics.searches.WithLabelValues(algorithm, result).Inc()
	c.JSON(status, gin.H{"error": err.Error()})
}

// classify maps an error to an HTTP status and a metrics result label.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrExpansionLimit):
		return http.StatusUnprocessableEntity, resultLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, resultError
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrMapTooLarge),
		errors.Is(err, solver.ErrUnknownAlgorithm),
		errors.Is(err, heuristic.ErrUnknownMetric),
		errors.Is(err, core.ErrOptionViolation),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrGridTooLarge),
		errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, gridgraph.ErrBlockedCell),
		errors.Is(err, gridgraph.ErrUnknownMover):
		return http.StatusBadRequest, resultInvalid
	}

	return http.StatusInternalServerError, resultError
}
