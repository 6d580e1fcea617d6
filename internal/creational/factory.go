package creational

import (
	"fmt"
	"io"
	"strings"
)

// Notifier delivers a message over one channel.
type Notifier interface {
	Channel() string
	Send(recipient, message string) string
}

type emailNotifier struct{}

func (emailNotifier) Channel() string { return "email" }
func (emailNotifier) Send(recipient, message string) string {
	return fmt.Sprintf("email to %s: %s", recipient, message)
}

type smsNotifier struct{}

func (smsNotifier) Channel() string { return "sms" }
func (smsNotifier) Send(recipient, message string) string {
	return fmt.Sprintf("sms to %s: %s", recipient, message)
}

type pushNotifier struct{}

func (pushNotifier) Channel() string { return "push" }
func (pushNotifier) Send(recipient, message string) string {
	return fmt.Sprintf("push to %s: %s", recipient, message)
}

// NewNotifier selects the concrete notifier for a channel name.
func NewNotifier(channel string) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(channel)) {
	case "email":
		return emailNotifier{}, nil
	case "sms":
		return smsNotifier{}, nil
	case "push":
		return pushNotifier{}, nil
	default:
		return nil, fmt.Errorf("unknown notification channel: %s", channel)
	}
}

func DemoFactory(w io.Writer) error {
	for _, channel := range []string{"email", "sms", "push"} {
		n, err := NewNotifier(channel)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n.Send("ada", "build finished"))
	}
	if _, err := NewNotifier("carrier-pigeon"); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}
	return nil
}
