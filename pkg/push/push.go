// Package push delivers mobile push notifications through Firebase Cloud Messaging.
package push

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var ErrEmptyToken = errors.New("empty push token")

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type Sender struct {
	client messagingClient
}

// New builds a sender from a service account file.
func New(ctx context.Context, credentialsFile string) (*Sender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	return &Sender{client: client}, nil
}

func (s *Sender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return ErrEmptyToken
	}
	_, err := s.client.Send(ctx, newMessage(token, title, body, data))
	if err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}

func newMessage(token, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
