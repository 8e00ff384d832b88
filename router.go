package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

var emptyAck = []byte("{}")

// Bot holds what every request shares. None of it changes after startup.
type Bot struct {
	BotUserID string
	Theme     Theme
	Platform  Platform
}

type Router struct {
	botUserID string
	emoji     string
	reactions *ReactionResponder
	replies   *ReplyComposer
}

func NewRouter(bot Bot) *Router {
	reactions := NewReactionResponder(bot.Platform, bot.Theme.Emoji)
	return &Router{
		botUserID: bot.BotUserID,
		emoji:     bot.Theme.Emoji,
		reactions: reactions,
		replies:   NewReplyComposer(bot.Platform, reactions, bot.Theme, bot.BotUserID),
	}
}

// Route handles an authenticated webhook body and returns the response body.
func (r *Router) Route(ctx context.Context, body []byte) ([]byte, error) {
	payload, err := decodeObject(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if challenge, ok := payload["challenge"]; ok {
		Info("Answering URL verification challenge")
		return challengeResponse(challenge)
	}

	if raw, ok := payload["event"]; ok {
		event, err := parseEvent(raw)
		if err != nil {
			return nil, err
		}
		if err := r.Dispatch(ctx, event); err != nil {
			return nil, err
		}
		return emptyAck, nil
	}

	Debug("Body has neither challenge nor event; acknowledging")
	return emptyAck, nil
}

// challengeResponse echoes the token without re-encoding it.
func challengeResponse(challenge json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"challenge":`)
	if err := json.Compact(&buf, challenge); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func (r *Router) Dispatch(ctx context.Context, event InboundEvent) error {
	switch e := event.(type) {
	case ReactionAddedEvent:
		if e.User == r.botUserID {
			return nil
		}
		reaction, ok := e.Reaction.Get()
		if !ok {
			return fmt.Errorf("%w: missing %q", ErrMalformedEvent, "reaction")
		}
		if reaction != r.emoji {
			return nil
		}
		Info("Reaction :%s: from %s on %s/%s", reaction, e.User, e.ItemChannel, e.ItemTimestamp)
		return r.reactions.React(ctx, e.ItemChannel, e.ItemTimestamp)
	case MessageEvent:
		return r.replies.MaybeReply(ctx, e)
	case UnhandledEvent:
		Debug("Ignoring event type %q", e.Type)
		return nil
	default:
		return fmt.Errorf("unexpected event kind %s", event.Kind())
	}
}
