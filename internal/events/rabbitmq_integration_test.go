package events_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/baharkarakas/minivenmo/internal/events"
	"github.com/baharkarakas/minivenmo/internal/models"
)

func TestRabbitMQPublisherIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-alpine",
			ExposedPorts: []string{"5672/tcp"},
			Env: map[string]string{
				"RABBITMQ_DEFAULT_USER": "guest",
				"RABBITMQ_DEFAULT_PASS": "guest",
			},
			WaitingFor: wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)
	url := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())

	const exchange = "minivenmo.activity.test"
	pub, err := events.NewRabbitMQPublisher(url, exchange)
	require.NoError(t, err)
	defer pub.Close()

	// consumer side: a private queue bound to payment events only
	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "activity.payment", exchange, false, nil))
	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	friend := models.NewFriendshipActivity("u1", "u2")
	friend.ID = 1
	require.NoError(t, pub.Publish(ctx, events.FromActivity(*friend)))

	pay := models.NewPaymentActivity("u1", "u2", decimal.RequireFromString("12.5"), "lunch")
	pay.ID = 2
	require.NoError(t, pub.Publish(ctx, events.FromActivity(*pay)))

	select {
	case msg := <-msgs:
		assert.Equal(t, "activity.payment", msg.RoutingKey)
		assert.Equal(t, "application/json", msg.ContentType)
		var ev events.ActivityEvent
		require.NoError(t, json.Unmarshal(msg.Body, &ev))
		assert.Equal(t, int64(2), ev.ActivityID)
		assert.Equal(t, "12.50", ev.Amount)
		assert.Equal(t, "lunch", ev.Description)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for payment event")
	}

	select {
	case msg := <-msgs:
		t.Fatalf("friendship event leaked into payment queue: %s", msg.RoutingKey)
	case <-time.After(500 * time.Millisecond):
	}
}
