package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// subscribeToRelayedEvents consumes event callbacks that an upstream relay
// has already verified and published to Redis.
func subscribeToRelayedEvents(ctx context.Context, rdb *redis.Client, router *Router, config Config) {
	pubsub := rdb.Subscribe(ctx, config.RedisEventChannel)
	defer pubsub.Close()

	Info("Subscribed to Redis channel: %s", config.RedisEventChannel)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg == nil {
				continue
			}
			if err := handleRelayedEvent(ctx, router, msg.Payload); err != nil {
				Error("Error handling relayed event: %v", err)
			}
		}
	}
}

func handleRelayedEvent(ctx context.Context, router *Router, payload string) error {
	body, err := decodeObject([]byte(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	// Handshakes only make sense on the HTTP endpoint.
	if body.has("challenge") {
		Debug("Ignoring relayed challenge")
		return nil
	}
	raw, ok := body["event"]
	if !ok {
		return errors.New("relayed payload has no event")
	}

	event, err := parseEvent(raw)
	if err != nil {
		return err
	}
	return router.Dispatch(ctx, event)
}
