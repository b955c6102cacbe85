package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/models"
	natspkg "github.com/piresc/antarkan/internal/pkg/nats"
	"github.com/piresc/antarkan/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationHandler_HandleDriverLocation(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		ucErr   error
		called  bool
		wantErr string
	}{
		{
			name:    "valid event",
			payload: []byte(`{"driver_id":"driver-1","latitude":40.7,"longitude":-74.0}`),
			called:  true,
		},
		{
			name:    "usecase error is returned",
			payload: []byte(`{"driver_id":"driver-1","latitude":40.7,"longitude":-74.0}`),
			ucErr:   errors.New("redis down"),
			called:  true,
			wantErr: "redis down",
		},
		{
			name:    "malformed payload",
			payload: []byte(`{"driver_id":`),
			wantErr: "failed to unmarshal driver location event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDispatchUC(ctrl)
			if tt.called {
				mockUC.EXPECT().
					HandleDriverLocation(gomock.Any(), models.DriverLocationEvent{
						DriverID:  "driver-1",
						Latitude:  40.7,
						Longitude: -74.0,
					}).
					Return(tt.ucErr)
			}

			err := NewLocationHandler(mockUC, nil).handleDriverLocation(tt.payload)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLocationHandler_ConsumesFromNATS(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	server := natsserver.RunServer(&opts)
	defer server.Shutdown()

	client, err := natspkg.NewClient(server.ClientURL(), "dispatch-test")
	require.NoError(t, err)
	defer client.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	received := make(chan models.DriverLocationEvent, 2)
	mockUC := mocks.NewMockDispatchUC(ctrl)
	mockUC.EXPECT().
		HandleDriverLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DriverLocationEvent) error {
			received <- event
			return nil
		}).
		Times(1)

	handler := NewLocationHandler(mockUC, client)
	require.NoError(t, handler.InitNATSConsumers())
	require.Len(t, handler.subs, 1)

	event := models.DriverLocationEvent{
		DriverID:  "driver-9",
		Latitude:  40.709,
		Longitude: -74.0,
		Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	require.NoError(t, client.Publish(constants.SubjectDriverLocation, payload))

	select {
	case got := <-received:
		assert.Equal(t, event, got)
	case <-time.After(2 * time.Second):
		t.Fatal("driver location event was not delivered")
	}

	handler.Unsubscribe()
	assert.Empty(t, handler.subs)

	// nothing is delivered after unsubscribing
	require.NoError(t, client.Publish(constants.SubjectDriverLocation, payload))
	require.NoError(t, client.GetConn().Flush())
	select {
	case <-received:
		t.Fatal("event delivered after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}
