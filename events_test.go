package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventMessage(t *testing.T) {
	event, err := parseEvent(json.RawMessage(`{"type":"message","channel":"C1","ts":"1.1","thread_ts":"0.5","user":"U1","text":"hi"}`))
	require.NoError(t, err)

	msg, ok := event.(MessageEvent)
	require.True(t, ok, "expected MessageEvent, got %T", event)
	assert.Equal(t, KindMessage, msg.Kind())
	assert.Equal(t, "C1", msg.Channel)
	assert.Equal(t, "1.1", msg.Timestamp)
	assert.Equal(t, "0.5", msg.ThreadTimestamp.MustGet())
	assert.False(t, msg.Subtype.IsPresent())
	assert.Equal(t, "0.5", msg.ReplyThread())
}

func TestParseEventMessageWithoutThread(t *testing.T) {
	event, err := parseEvent(json.RawMessage(`{"type":"message","channel":"C1","ts":"1.1","user":"U1","text":"hi","thread_ts":null}`))
	require.NoError(t, err)

	msg := event.(MessageEvent)
	assert.False(t, msg.ThreadTimestamp.IsPresent())
	assert.Equal(t, "1.1", msg.ReplyThread())
}

func TestParseEventMessageChangedSkipsContent(t *testing.T) {
	event, err := parseEvent(json.RawMessage(`{"type":"message","subtype":"message_changed","message":{"text":"rust"}}`))
	require.NoError(t, err)

	msg := event.(MessageEvent)
	assert.True(t, msg.IsEdit())
	assert.Empty(t, msg.User)
}

func TestParseEventReactionAdded(t *testing.T) {
	event, err := parseEvent(json.RawMessage(`{"type":"reaction_added","user":"U1","reaction":"crustacean","item":{"type":"message","channel":"C2","ts":"3.3"},"item_user":"U7"}`))
	require.NoError(t, err)

	assert.Equal(t, ReactionAddedEvent{ItemChannel: "C2", ItemTimestamp: "3.3", User: "U1", Reaction: mo.Some("crustacean")}, event)
	assert.Equal(t, KindReactionAdded, event.Kind())
}

func TestParseEventReactionAddedWithoutName(t *testing.T) {
	event, err := parseEvent(json.RawMessage(`{"type":"reaction_added","user":"U0","item":{"channel":"C2","ts":"3.3"}}`))
	require.NoError(t, err)

	assert.False(t, event.(ReactionAddedEvent).Reaction.IsPresent())
}

func TestParseEventUnhandled(t *testing.T) {
	event, err := parseEvent(json.RawMessage(`{"type":"team_join","user":{"id":"U1"}}`))
	require.NoError(t, err)

	assert.Equal(t, UnhandledEvent{Type: "team_join"}, event)
	assert.Equal(t, "unhandled", event.Kind().String())
}

func TestParseEventMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an object", `"message"`},
		{"null", `null`},
		{"missing type", `{"channel":"C1"}`},
		{"type not a string", `{"type":7}`},
		{"item not an object", `{"type":"reaction_added","user":"U1","reaction":"x","item":"C1"}`},
		{"item missing ts", `{"type":"reaction_added","user":"U1","reaction":"x","item":{"channel":"C1"}}`},
		{"reaction not a string", `{"type":"reaction_added","user":"U1","reaction":1,"item":{"channel":"C1","ts":"1"}}`},
		{"message missing channel", `{"type":"message","ts":"1.1","user":"U1","text":"hi"}`},
		{"message missing ts", `{"type":"message","channel":"C1","user":"U1","text":"hi"}`},
		{"subtype not a string", `{"type":"message","subtype":{},"channel":"C1","ts":"1.1","user":"U1","text":"hi"}`},
		{"text is null", `{"type":"message","channel":"C1","ts":"1.1","user":"U1","text":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEvent(json.RawMessage(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedEvent), "unexpected error: %v", err)
		})
	}
}
