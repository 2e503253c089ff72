package notify

import "fmt"

// Sender delivers one message to one recipient over a single channel.
type Sender interface {
	Send(to string, msg string) error
}

// Registry routes a send to the Sender registered for a channel.
type Registry struct {
	senders map[string]Sender
}

func NewRegistry(senders map[string]Sender) *Registry {
	return &Registry{senders: senders}
}

func (r *Registry) Send(channel, to, msg string) error {
	sender, ok := r.senders[channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", channel)
	}

	if err := sender.Send(to, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}
