// Package command implements a declarative side-effect description and
// executor: a closed Cmd sum type built through smart constructors,
// interpreted by a fixed-size worker pool.
//
// Cmd is a tagged struct switched on by Kind — a closed sum type expressed
// as a switch over a Kind field rather than a virtual call through an
// interface hierarchy.
package command

import "time"

// Kind tags which variant a Cmd holds.
type Kind int

const (
	KindNone Kind = iota
	KindPerform
	KindSleep
	KindBatch
	KindSequence
	KindTick
	KindInterval
)

// Cmd is a description of a side effect to run, not the side effect itself.
// The zero value is None.
type Cmd struct {
	kind     Kind
	perform  func(doneCtx Canceler)
	duration time.Duration
	then     *Cmd
	children []Cmd
	callback func(time.Time)
}

// Canceler is the cancellation signal a Perform/Tick/Interval body should
// race its own suspension points against. It is satisfied by
// context.Context; kept as a narrow interface here so this package need not
// import context just to describe the Cmd shape.
type Canceler interface {
	Done() <-chan struct{}
	Err() error
}

// None is the no-op command: submitting it runs nothing and signals no
// render request.
func None() Cmd { return Cmd{kind: KindNone} }

// IsNone reports whether c is the no-op command.
func (c Cmd) IsNone() bool { return c.kind == KindNone }

// Perform spawns f on a worker; a render is requested when it returns.
func Perform(f func(Canceler)) Cmd {
	return Cmd{kind: KindPerform, perform: f}
}

// Sleep waits d, then interprets then. Passing None for then signals a
// render immediately after the sleep, with no further work.
func Sleep(d time.Duration, then Cmd) Cmd {
	return Cmd{kind: KindSleep, duration: d, then: &then}
}

// Batch spawns every command in cs concurrently and signals once after all
// complete. Empty batches collapse to None; single-element batches collapse
// to that element.
func Batch(cs ...Cmd) Cmd {
	filtered := filterNone(cs)
	switch len(filtered) {
	case 0:
		return None()
	case 1:
		return filtered[0]
	default:
		return Cmd{kind: KindBatch, children: filtered}
	}
}

// Sequence interprets each command in cs in order, waiting for one to
// complete before starting the next, and signals once after the last
// completes. Collapses the same way Batch does.
func Sequence(cs ...Cmd) Cmd {
	filtered := filterNone(cs)
	switch len(filtered) {
	case 0:
		return None()
	case 1:
		return filtered[0]
	default:
		return Cmd{kind: KindSequence, children: filtered}
	}
}

// Tick waits d, calls f with the firing time, and signals.
func Tick(d time.Duration, f func(time.Time)) Cmd {
	return Cmd{kind: KindTick, duration: d, callback: f}
}

// Interval waits until the next d-aligned boundary since the Unix epoch,
// calls f with the firing time, and signals — a single firing; the caller
// resubmits Interval again (typically from inside f, or from the next
// render) to keep ticking.
func Interval(d time.Duration, f func(time.Time)) Cmd {
	return Cmd{kind: KindInterval, duration: d, callback: f}
}

// AndThen chains next after c. If c is None, next runs immediately. If c is
// a Sleep, next is appended to the end of its then-chain so the sleep still
// happens first. Otherwise c and next run as an unordered Batch: Sleep is
// the only variant that gets a genuine sequencing fast path here.
func (c Cmd) AndThen(next Cmd) Cmd {
	switch c.kind {
	case KindNone:
		return next
	case KindSleep:
		chained := c.then.AndThen(next)
		return Cmd{kind: KindSleep, duration: c.duration, then: &chained}
	default:
		return Batch(c, next)
	}
}

func filterNone(cs []Cmd) []Cmd {
	out := make([]Cmd, 0, len(cs))
	for _, c := range cs {
		if !c.IsNone() {
			out = append(out, c)
		}
	}
	return out
}
