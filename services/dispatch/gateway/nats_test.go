package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/models"
	natspkg "github.com/piresc/antarkan/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	subject string
	payload interface{}
	err     error
}

func (f *fakePublisher) PublishJSON(subject string, v interface{}) error {
	f.subject = subject
	f.payload = v
	return f.err
}

func assignedEvent() models.TaskGroupAssignedEvent {
	return models.TaskGroupAssignedEvent{
		TaskGroupID:  "tg-1",
		DriverID:     "driver-1",
		OrderIDs:     []string{"o1", "o2"},
		PickupCenter: models.Coordinate{Latitude: 40.709, Longitude: -74.0},
		AssignedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNATSGateway_PublishTaskGroupAssigned(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewDispatchGW(NewHaversineMatrixClient(), pub)

	err := gw.PublishTaskGroupAssigned(context.Background(), assignedEvent())

	require.NoError(t, err)
	assert.Equal(t, constants.SubjectTaskGroupAssigned, pub.subject)
	assert.Equal(t, assignedEvent(), pub.payload)
}

func TestNATSGateway_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection closed")}
	gw := NewNATSGateway(pub)

	err := gw.PublishTaskGroupAssigned(context.Background(), assignedEvent())

	assert.EqualError(t, err, "connection closed")
}

func TestNATSGateway_PublishesOverNATS(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	server := natsserver.RunServer(&opts)
	defer server.Shutdown()

	client, err := natspkg.NewClient(server.ClientURL(), "dispatch-test")
	require.NoError(t, err)
	defer client.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.GetConn().Subscribe(constants.SubjectTaskGroupAssigned, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	gw := NewDispatchGW(NewHaversineMatrixClient(), client)
	require.NoError(t, gw.PublishTaskGroupAssigned(context.Background(), assignedEvent()))

	select {
	case msg := <-msgCh:
		var got models.TaskGroupAssignedEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "tg-1", got.TaskGroupID)
		assert.Equal(t, "driver-1", got.DriverID)
		assert.Equal(t, []string{"o1", "o2"}, got.OrderIDs)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for task group assignment")
	}
}
