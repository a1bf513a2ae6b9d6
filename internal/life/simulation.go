package life

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/geometry/internal/config"
	"github.com/zeusync/geometry/internal/observability/log"
	"github.com/zeusync/geometry/pkg/geom"
)

// Result summarises a finished run.
type Result struct {
	RunID       uuid.UUID
	Scenario    string
	Generations int
	Population  int
	// CycleStart is the first generation of a detected repeat, -1 if none.
	CycleStart  int
	CycleLength int
	Elapsed     time.Duration
	Final       *Board
}

// Simulation advances one scenario.
type Simulation struct {
	id       uuid.UUID
	scenario config.Scenario
	board    *Board
	logger   log.Log
}

// New seeds a board from the scenario's fills and patterns.
func New(s config.Scenario, logger log.Log) (*Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if logger == nil {
		logger = log.NewNop()
	}

	board, err := NewBoard(s.Width, s.Height, NewRule(s.Rule))
	if err != nil {
		return nil, err
	}
	for _, f := range s.Fills {
		board.Fill(geom.NewRect(f.X, f.Y, f.Width, f.Height))
	}
	for _, p := range s.Patterns {
		offsets := make([]geom.Vec2[int], len(p.Cells))
		for i, c := range p.Cells {
			offsets[i] = geom.NewVec2(c[0], c[1])
		}
		board.Stamp(geom.NewVec2(p.X, p.Y), offsets)
	}

	id := uuid.New()
	return &Simulation{
		id:       id,
		scenario: s,
		board:    board,
		logger: logger.With(
			log.String("scenario", s.Name),
			log.Stringer("run_id", id),
		),
	}, nil
}

func (s *Simulation) ID() uuid.UUID  { return s.id }
func (s *Simulation) Board() *Board { return s.board }

// Run advances up to the scenario's step count. It stops early when a
// generation repeats an earlier one, since the board is then periodic, or
// when ctx is done.
func (s *Simulation) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:      s.id,
		Scenario:   s.scenario.Name,
		CycleStart: -1,
	}

	s.logger.Info("simulation started",
		log.Int("width", s.board.Width()),
		log.Int("height", s.board.Height()),
		log.Stringer("rule", s.board.rule),
		log.Int("population", s.board.Population()),
	)

	seen := map[uint64]int{s.board.Fingerprint(): 0}
	gen := 0
	for gen < s.scenario.Steps {
		if err := ctx.Err(); err != nil {
			res.Generations = gen
			res.Final = s.board
			return res, fmt.Errorf("simulation %s interrupted at generation %d: %w", s.scenario.Name, gen, err)
		}

		next := s.board.Step()
		gen++
		s.board = next

		fp := next.Fingerprint()
		if first, ok := seen[fp]; ok {
			res.CycleStart = first
			res.CycleLength = gen - first
			s.logger.Info("cycle detected",
				log.Int("generation", gen),
				log.Int("cycle_start", first),
				log.Int("cycle_length", res.CycleLength),
			)
			break
		}
		seen[fp] = gen

		s.logger.Debug("generation", log.Int("generation", gen), log.Uint64("fingerprint", fp))
	}

	res.Generations = gen
	res.Population = s.board.Population()
	res.Elapsed = time.Since(start)
	res.Final = s.board

	s.logger.Info("simulation finished",
		log.Int("generations", res.Generations),
		log.Int("population", res.Population),
		log.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
