package sim

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/gimbalworks/sbgcdec/internal/decode"
)

var ErrInvalidChunkWidth = errors.New("sim: chunk width must be positive")

// Source yields one (buffer, ready) sample per step. ok=false ends the run.
type Source interface {
	Next() (buf []byte, ready float64, ok bool)
}

// Sink receives one result per step.
type Sink interface {
	Consume(step int, res decode.Result)
}

// Runner stands in for the host scheduler: it invokes the block exactly once
// per step, in order, and never re-enters it.
type Runner struct {
	block *decode.Block
	log   zerolog.Logger
}

func NewRunner(block *decode.Block, log zerolog.Logger) *Runner {
	return &Runner{block: block, log: log}
}

// Run drives the block until src is exhausted and returns the step count.
// Port-width violations abort the run; they are the host's fault, not an
// in-band decode condition.
func (r *Runner) Run(src Source, sink Sink) (int, error) {
	step := 0
	for {
		buf, ready, ok := src.Next()
		if !ok {
			return step, nil
		}
		if err := decode.ValidateBuffer(buf); err != nil {
			return step, err
		}

		res := r.block.Step(buf, ready)
		if res.ParseErrors > 0 {
			r.log.Debug().
				Int("step", step).
				Int("parse_errors", res.ParseErrors).
				Msg("resync during scan")
		}
		if res.Decoded() {
			r.log.Info().
				Int("step", step).
				Float64("command_id", res.CommandID).
				Msg("frame decoded")
		}

		if sink != nil {
			sink.Consume(step, res)
		}
		step++
	}
}

// ChunkSource slices a byte stream into fixed-width step buffers with the
// gate held open. A frame straddling a chunk boundary is lost: the block
// keeps no state between steps.
type ChunkSource struct {
	data  []byte
	width int
	off   int
}

func NewChunkSource(data []byte, width int) (*ChunkSource, error) {
	if width <= 0 {
		return nil, ErrInvalidChunkWidth
	}
	return &ChunkSource{data: data, width: width}, nil
}

func (s *ChunkSource) Next() ([]byte, float64, bool) {
	if s.off >= len(s.data) {
		return nil, 0, false
	}
	end := s.off + s.width
	if end > len(s.data) {
		end = len(s.data)
	}
	buf := s.data[s.off:end]
	s.off = end
	return buf, 1, true
}

// ResultList is a Sink that collects every step result.
type ResultList struct {
	Results []decode.Result
}

func (l *ResultList) Consume(_ int, res decode.Result) {
	l.Results = append(l.Results, res)
}
