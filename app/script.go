package app

import (
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-ledpaint/widget"
)

// Source feeds input to the headless loop. Next reports false once the source
// is exhausted.
type Source interface {
	Next() (Input, bool)
}

// ScriptStep is one scripted frame, optionally repeated.
type ScriptStep struct {
	X       int  `yaml:"x"`
	Y       int  `yaml:"y"`
	Down    bool `yaml:"down"`    // primary button held
	Press   bool `yaml:"press"`   // button went down this frame
	Release bool `yaml:"release"` // button went up this frame
	Space   bool `yaml:"space"`
	Quit    bool `yaml:"quit"`
	Repeat  int  `yaml:"repeat"`
}

// Script replays a fixed list of steps.
type Script struct {
	Steps []ScriptStep
	pos   int
	rep   int
}

func LoadScript(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var steps []ScriptStep
	if err := yaml.Unmarshal(b, &steps); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return &Script{Steps: steps}, nil
}

func (s *Script) Next() (Input, bool) {
	if s.pos >= len(s.Steps) {
		return Input{}, false
	}
	st := s.Steps[s.pos]
	first := s.rep == 0

	in := Input{
		Pointer: widget.Pointer{Pos: image.Pt(st.X, st.Y), Primary: st.Down},
		Clear:   st.Space,
	}
	if first {
		if st.Press {
			in.Events = append(in.Events, Event{Kind: PointerDown})
		}
		if st.Release {
			in.Events = append(in.Events, Event{Kind: PointerUp})
		}
		if st.Quit {
			in.Events = append(in.Events, Event{Kind: Quit})
		}
	}

	s.rep++
	if s.rep >= st.Repeat {
		s.pos++
		s.rep = 0
	}
	return in, true
}

// Idle is a source with no input that never runs out.
type Idle struct{}

func (Idle) Next() (Input, bool) {
	return Input{}, true
}
