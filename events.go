package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"github.com/slack-go/slack/slackevents"
)

const messageChangedSubtype = "message_changed"

var (
	// ErrMalformedEvent means a recognised event is missing a field it needs.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrInvalidPayload means an authenticated body is not a JSON object.
	ErrInvalidPayload = errors.New("invalid payload")
)

type jsonObject map[string]json.RawMessage

func decodeObject(data []byte) (jsonObject, error) {
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return obj, nil
}

func (o jsonObject) has(key string) bool {
	_, ok := o[key]
	return ok
}

func (o jsonObject) requireString(key string) (string, error) {
	raw, ok := o[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedEvent, key)
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", fmt.Errorf("%w: %q is not a string", ErrMalformedEvent, key)
	}
	return *s, nil
}

func (o jsonObject) optionalString(key string) (mo.Option[string], error) {
	raw, ok := o[key]
	if !ok {
		return mo.None[string](), nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return mo.None[string](), fmt.Errorf("%w: %q is not a string", ErrMalformedEvent, key)
	}
	if s == nil {
		return mo.None[string](), nil
	}
	return mo.Some(*s), nil
}

func (o jsonObject) requireObject(key string) (jsonObject, error) {
	raw, ok := o[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedEvent, key)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an object", ErrMalformedEvent, key)
	}
	return obj, nil
}

// parseEvent turns the "event" member of an event callback into one of the
// InboundEvent variants. Unknown types come back as UnhandledEvent.
func parseEvent(raw json.RawMessage) (InboundEvent, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: event is not an object", ErrMalformedEvent)
	}

	eventType, err := fields.requireString("type")
	if err != nil {
		return nil, err
	}

	switch eventType {
	case string(slackevents.ReactionAdded):
		return parseReactionAdded(fields)
	case string(slackevents.Message):
		return parseMessage(fields)
	default:
		return UnhandledEvent{Type: eventType}, nil
	}
}

func parseReactionAdded(fields jsonObject) (ReactionAddedEvent, error) {
	var event ReactionAddedEvent

	item, err := fields.requireObject("item")
	if err != nil {
		return event, err
	}
	if event.ItemChannel, err = item.requireString("channel"); err != nil {
		return event, err
	}
	if event.ItemTimestamp, err = item.requireString("ts"); err != nil {
		return event, err
	}
	if event.User, err = fields.requireString("user"); err != nil {
		return event, err
	}
	if event.Reaction, err = fields.optionalString("reaction"); err != nil {
		return event, err
	}
	return event, nil
}

func parseMessage(fields jsonObject) (MessageEvent, error) {
	var event MessageEvent
	var err error

	if event.Subtype, err = fields.optionalString("subtype"); err != nil {
		return event, err
	}
	// Edits carry their content under "message" rather than at the top level,
	// and the composer ignores them anyway.
	if event.IsEdit() {
		return event, nil
	}

	if event.User, err = fields.requireString("user"); err != nil {
		return event, err
	}
	if event.Text, err = fields.requireString("text"); err != nil {
		return event, err
	}
	if event.Channel, err = fields.requireString("channel"); err != nil {
		return event, err
	}
	if event.Timestamp, err = fields.requireString("ts"); err != nil {
		return event, err
	}
	if event.ThreadTimestamp, err = fields.optionalString("thread_ts"); err != nil {
		return event, err
	}
	return event, nil
}
