//go:build unit

package messaging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/antoninkin/parkmate-app/internal/infra/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	p := messaging.NewLogPublisher(logger)

	err := p.Publish(context.Background(), "parkmate.reservations", "res-1", []byte(`{"type":"reservation.paid"}`))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"topic":"parkmate.reservations"`)
	assert.Contains(t, out, `"key":"res-1"`)
	assert.Contains(t, out, "reservation.paid")
	assert.NoError(t, p.Close())
}
