package radial

import (
	"context"
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON document.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"pan": true, "zoom": true, "zoomto": true, "click": true, "doubleclick": true,
	"drag": true, "wait": true, "settle": true, "reset": true, "stepout": true,
	"snapshot": true,
}

// Script is a parsed sequence of navigation steps played against a View one
// tick at a time:
//
//	{"steps": [
//	  {"action": "zoomto", "x": 400, "y": 300},
//	  {"action": "settle"},
//	  {"action": "snapshot", "label": "root"}
//	]}
type Script struct {
	steps []scriptStep
}

// ParseScript decodes a JSON script. Unknown actions and empty scripts are
// rejected with ErrInvalidScript.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(ErrInvalidScript, "decode: %v", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.Wrap(ErrInvalidScript, "no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, errors.Wrapf(ErrInvalidScript, "step %d: unknown action %q", i, st.Action)
		}
		if st.Frames < 0 {
			return nil, errors.Wrapf(ErrInvalidScript, "step %d: negative frames", i)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read script %s", path)
	}
	return ParseScript(data)
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run plays the script against v at Config.TickRate, calling snap for each
// snapshot step with the frame after that tick. It returns when the script
// completes, when snap fails or when ctx is done.
func (s *Script) Run(ctx context.Context, v *View, snap SnapshotFunc) error {
	p := newPlayer(s.steps, v)
	dt := 1 / float64(v.cfg.TickRate)
	for !p.done {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "script stopped at step %d", p.cursor)
		}
		label, shoot := p.step(dt)
		v.Update(dt)
		if shoot && snap != nil {
			if err := snap(label, v.Frame()); err != nil {
				return errors.Wrapf(err, "snapshot %q", label)
			}
		}
	}
	return nil
}

// player sequences steps and injected pointer samples across ticks.
type player struct {
	steps     []scriptStep
	cursor    int
	view      *View
	input     *PointerInput
	queue     []PointerSample
	waitCount int
	settling  bool
	done      bool
}

func newPlayer(steps []scriptStep, v *View) *player {
	return &player{steps: steps, view: v, input: NewPointerInput(v)}
}

// step advances one tick. It returns the label of a snapshot to take after
// the tick, if any.
func (p *player) step(dt float64) (string, bool) {
	defer p.checkDone()

	// Drain injected pointer samples, one per tick.
	if len(p.queue) > 0 {
		s := p.queue[0]
		p.queue = p.queue[1:]
		p.input.Update(s, dt)
		return "", false
	}
	if p.waitCount > 0 {
		p.waitCount--
		return "", false
	}
	if p.settling {
		if p.view.camera.Animating() {
			return "", false
		}
		p.settling = false
	}
	if p.cursor >= len(p.steps) {
		return "", false
	}

	st := p.steps[p.cursor]
	p.cursor++

	switch st.Action {
	case "snapshot":
		return st.Label, true
	case "pan":
		p.view.Pan(st.X, st.Y)
	case "zoom":
		p.view.Zoom(st.Amount)
	case "zoomto":
		p.view.ZoomToPoint(st.X, st.Y)
	case "click":
		p.inject(
			PointerSample{X: st.X, Y: st.Y, Pressed: true},
			PointerSample{X: st.X, Y: st.Y},
		)
	case "doubleclick":
		p.inject(
			PointerSample{X: st.X, Y: st.Y, Pressed: true},
			PointerSample{X: st.X, Y: st.Y},
			PointerSample{X: st.X, Y: st.Y, Pressed: true},
			PointerSample{X: st.X, Y: st.Y},
		)
	case "drag":
		p.injectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			p.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "settle":
		p.settling = p.view.camera.Animating()
	case "reset":
		p.view.Reset()
	case "stepout":
		p.view.StepOut()
	}
	return "", false
}

func (p *player) checkDone() {
	if p.cursor >= len(p.steps) && len(p.queue) == 0 && p.waitCount == 0 && !p.settling {
		p.done = true
	}
}

func (p *player) inject(samples ...PointerSample) {
	p.queue = append(p.queue, samples...)
}

// injectDrag queues a press at the start, frames-2 interpolated moves, a held
// sample at the end point and the release there.
func (p *player) injectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.inject(PointerSample{X: fromX, Y: fromY, Pressed: true})
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		p.inject(PointerSample{
			X:       fromX + (toX-fromX)*t,
			Y:       fromY + (toY-fromY)*t,
			Pressed: true,
		})
	}
	p.inject(
		PointerSample{X: toX, Y: toY, Pressed: true},
		PointerSample{X: toX, Y: toY},
	)
}
