package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Publish(t *testing.T) {
	client, mock := redismock.NewClientMock()
	pub := NewRedisPublisher(client, "fyyur:listings")

	e := Event{
		Type:       VenueCreated,
		EntityID:   3,
		Name:       "Park Square Live Music & Coffee",
		OccurredAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(e)
	require.NoError(t, err)

	mock.ExpectPublish("fyyur:listings", payload).SetVal(1)

	require.NoError(t, pub.Publish(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisPublisher_PublishError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	pub := NewRedisPublisher(client, "fyyur:listings")

	e := Event{Type: ShowDeleted, EntityID: 9, OccurredAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)}
	payload, _ := json.Marshal(e)
	mock.ExpectPublish("fyyur:listings", payload).SetErr(errors.New("connection refused"))

	err := pub.Publish(context.Background(), e)
	assert.ErrorContains(t, err, "publish show.deleted event")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{Type: ArtistCreated}))
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient("http://not-redis")
	assert.ErrorContains(t, err, "parse redis url")
}
