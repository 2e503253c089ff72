package notify

import (
	"errors"
	"math/rand"
)

// ErrSimulatedFailure is returned by a flaky sender when the injected
// transient failure fires.
var ErrSimulatedFailure = errors.New("simulated notification failure")

type flaky struct {
	inner Sender
	rate  float64
	randF func() float64
}

// Flaky wraps a Sender so that each Send independently fails with the given
// probability, modelling a transient downstream outage. A rate of 0 (or
// less) returns the sender unchanged.
func Flaky(inner Sender, rate float64) Sender {
	if rate <= 0 {
		return inner
	}

	return &flaky{inner: inner, rate: rate, randF: rand.Float64}
}

func (f *flaky) Send(to string, msg string) error {
	if f.randF() < f.rate {
		return ErrSimulatedFailure
	}

	return f.inner.Send(to, msg)
}
