package led

import (
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

// Sim keeps the last frame in memory. Used when no hardware is present.
type Sim struct {
	Count  int
	Last   model.Frame
	closed bool
}

func NewSim() *Sim {
	return &Sim{}
}

func (s *Sim) Push(f model.Frame) error {
	if s.closed {
		return ErrClosed
	}
	s.Count++
	s.Last = f
	log.Debug().Int("frame", s.Count).Stringer("first", f[0]).Msg("sim push")
	return nil
}

func (s *Sim) Close() error {
	s.closed = true
	return nil
}
