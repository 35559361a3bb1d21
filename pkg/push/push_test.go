package push

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}
	return "projects/investledger/messages/1", nil
}

func TestSender_Send(t *testing.T) {
	data := map[string]string{"type": "COMMISSION_APPROVED"}

	tests := []struct {
		name        string
		token       string
		clientErr   error
		expectedErr bool
		sent        int
	}{
		{
			name:  "Message sent",
			token: "device-token",
			sent:  1,
		},
		{
			name:        "Empty token is rejected before calling FCM",
			token:       "",
			expectedErr: true,
		},
		{
			name:        "FCM error",
			token:       "device-token",
			clientErr:   errors.New("unregistered"),
			expectedErr: true,
			sent:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.clientErr}
			s := &Sender{client: client}

			err := s.Send(context.Background(), tt.token, "Commission approved", "12.50 credited", data)

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, client.sent, tt.sent)
			if tt.sent > 0 {
				msg := client.sent[0]
				assert.Equal(t, tt.token, msg.Token)
				assert.Equal(t, "Commission approved", msg.Notification.Title)
				assert.Equal(t, "12.50 credited", msg.Notification.Body)
				assert.Equal(t, data, msg.Data)
				assert.Equal(t, "high", msg.Android.Priority)
			}
		})
	}
}
