package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSender struct {
	calls int
	err   error
}

func (s *stubSender) Send(to, msg string) error {
	s.calls++
	return s.err
}

func TestRegistry_Send(t *testing.T) {
	email := &stubSender{}
	r := NewRegistry(map[string]Sender{"email": email})

	err := r.Send("email", "a@x.com", "hello")
	assert.NoError(t, err)
	assert.Equal(t, 1, email.calls)
}

func TestRegistry_UnknownChannel(t *testing.T) {
	r := NewRegistry(map[string]Sender{})

	err := r.Send("pigeon", "a@x.com", "hello")
	assert.ErrorContains(t, err, "unknown channel")
}

func TestRegistry_SenderError(t *testing.T) {
	email := &stubSender{err: errors.New("smtp down")}
	r := NewRegistry(map[string]Sender{"email": email})

	err := r.Send("email", "a@x.com", "hello")
	assert.ErrorContains(t, err, "smtp down")
}

func TestFlaky_ZeroRateReturnsInner(t *testing.T) {
	inner := &stubSender{}

	assert.Same(t, Sender(inner), Flaky(inner, 0))
}

func TestFlaky_AlwaysFails(t *testing.T) {
	inner := &stubSender{}
	s := Flaky(inner, 1.0).(*flaky)
	s.randF = func() float64 { return 0.5 }

	err := s.Send("a@x.com", "hello")
	assert.ErrorIs(t, err, ErrSimulatedFailure)
	assert.Zero(t, inner.calls)
}

func TestFlaky_PassesThroughOnLuckyRoll(t *testing.T) {
	inner := &stubSender{}
	s := Flaky(inner, 0.25).(*flaky)
	s.randF = func() float64 { return 0.9 }

	err := s.Send("a@x.com", "hello")
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}
