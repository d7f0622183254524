package service

import (
	"github.com/IceWhaleTech/CasaOS-Common/utils/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type State int

const (
	StateIdle State = iota
	StateResolving
	StateDownloading
	StateExtracting
	StatePatching
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StateResolving:   "resolving",
	StateDownloading: "downloading",
	StateExtracting:  "extracting",
	StatePatching:    "patching",
	StateDone:        "done",
	StateFailed:      "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

var transitions = map[State][]State{
	StateIdle:        {StateResolving},
	StateResolving:   {StateDownloading},
	StateDownloading: {StateExtracting},
	StateExtracting:  {StatePatching, StateDone},
	StatePatching:    {StateDone},
}

// Observer is told about every state change of an installation.
type Observer func(from, to State)

// run tracks the state of a single installation.
type run struct {
	state    State
	observer Observer
	fields   []zap.Field
}

func newRun(observer Observer, fields ...zap.Field) *run {
	return &run{state: StateIdle, observer: observer, fields: fields}
}

func (r *run) advance(to State) error {
	allowed := r.state != to && !r.state.Terminal() && to == StateFailed
	for _, next := range transitions[r.state] {
		if next == to {
			allowed = true
		}
	}

	if !allowed {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", r.state, to)
	}

	from := r.state
	r.state = to

	logger.Info("installer state changed", append([]zap.Field{zap.Stringer("from", from), zap.Stringer("to", to)}, r.fields...)...)

	if r.observer != nil {
		r.observer(from, to)
	}

	return nil
}

// fail moves the run to StateFailed and returns err with the stage it
// failed in, if any.
func (r *run) fail(err error, stage string) error {
	if stage != "" {
		err = errors.Wrap(err, "failed during "+stage)
	}

	logger.Error("installation failed", append([]zap.Field{zap.Error(err), zap.Stringer("state", r.state)}, r.fields...)...)

	if r.state.Terminal() {
		return err
	}

	_ = r.advance(StateFailed)

	return err
}
