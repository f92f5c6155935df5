// Package input turns a raw terminal byte stream into per-frame intents
// and edge-triggered actions. Terminals report key presses, not releases,
// so a key counts as held while its last press is within a short hold
// window; key auto-repeat keeps the window refreshed.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last press.
const keyHoldDuration = 30 * time.Millisecond

// actionDebounce suppresses action repeats caused by terminal key
// auto-repeat while the key stays down.
const actionDebounce = 250 * time.Millisecond

// Intents is the polled input state for one frame.
type Intents struct {
	Thrust bool
	Left   bool
	Right  bool
	Fire   bool
	Quit   bool
}

// Action is an edge-triggered named input delivered via callback.
type Action int

const (
	// ActionStart starts a new game from the title screen or returns to
	// it after game over. Bound to the fire key.
	ActionStart Action = iota
	// ActionPause toggles pause during play.
	ActionPause
)

// keyState tracks the last press time of each key.
type keyState struct {
	thrust time.Time
	left   time.Time
	right  time.Time
	fire   time.Time
	quit   time.Time

	lastStart time.Time
	lastPause time.Time
}

// Stream delivers input bytes from a reader goroutine and tracks key
// state across polls.
type Stream struct {
	ch       chan byte
	state    keyState
	handlers map[Action]func()
}

// StartStream spawns a goroutine that reads bytes from r into the stream.
// The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		handlers: make(map[Action]func()),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// OnAction registers the callback for an action. Callbacks run
// synchronously inside Poll, on the game loop's goroutine.
func (s *Stream) OnAction(a Action, fn func()) {
	s.handlers[a] = fn
}

// Poll drains all pending bytes, fires any edge-triggered actions, and
// returns the current intents. Non-blocking.
func (s *Stream) Poll() Intents {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for _, a := range parseBytes(&s.state, buf, now) {
		if fn := s.handlers[a]; fn != nil {
			fn()
		}
	}
	return intentsAt(&s.state, now)
}

// parseBytes applies a batch of raw bytes to the key state and returns
// the actions they trigger, in input order.
func parseBytes(state *keyState, buf []byte, now time.Time) []Action {
	var actions []Action

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI arrow sequences: ESC [ A/C/D.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.thrust = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			}
		}

		switch b {
		case 'w', 'W':
			state.thrust = now
		case 'a', 'A':
			state.left = now
		case 'd', 'D':
			state.right = now
		case ' ', '\n', '\r':
			state.fire = now
			if now.Sub(state.lastStart) >= actionDebounce {
				state.lastStart = now
				actions = append(actions, ActionStart)
			}
		case 'p', 'P':
			if now.Sub(state.lastPause) >= actionDebounce {
				state.lastPause = now
				actions = append(actions, ActionPause)
			}
		case 'q', 'Q', '\x03':
			state.quit = now
		}
	}
	return actions
}

// intentsAt builds the intent snapshot for the given instant.
func intentsAt(state *keyState, now time.Time) Intents {
	return Intents{
		Thrust: now.Sub(state.thrust) < keyHoldDuration,
		Left:   now.Sub(state.left) < keyHoldDuration,
		Right:  now.Sub(state.right) < keyHoldDuration,
		Fire:   now.Sub(state.fire) < keyHoldDuration,
		Quit:   now.Sub(state.quit) < keyHoldDuration,
	}
}
