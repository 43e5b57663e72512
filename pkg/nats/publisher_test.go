package nats

import (
	"encoding/json"
	"testing"
	"time"

	"noteverse-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEventFoldsInType(t *testing.T) {
	evt := events.BaseEvent{
		Type:       "NOTE_UPVOTED",
		Data:       map[string]interface{}{"note_id": "abc", "upvotes": 4},
		OccurredAt: time.Now(),
	}

	data, err := encodeEvent(evt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "NOTE_UPVOTED", decoded["event_type"])
	assert.Equal(t, "abc", decoded["note_id"])
}

func TestEncodeEventLeavesPayloadUntouched(t *testing.T) {
	// Services reuse the payload map after publishing, so the type tag must
	// not leak back into it.
	payload := map[string]interface{}{"note_id": "abc"}
	evt := events.BaseEvent{Type: "NOTE_UPVOTED", Data: payload, OccurredAt: time.Now()}

	_, err := encodeEvent(evt)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"note_id": "abc"}, payload)
	assert.NotContains(t, payload, "event_type")
}

func TestEncodeEventNilPayload(t *testing.T) {
	evt := events.BaseEvent{Type: "USER_CREATED", OccurredAt: time.Now()}

	data, err := encodeEvent(evt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]interface{}{"event_type": "USER_CREATED"}, decoded)
}
