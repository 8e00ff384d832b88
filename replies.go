package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/samber/mo"
)

// ReplyComposer answers themed messages with a reaction and a threaded reply.
type ReplyComposer struct {
	platform  Platform
	reactions *ReactionResponder
	theme     Theme
	botUserID string
	random    io.Reader
}

func NewReplyComposer(platform Platform, reactions *ReactionResponder, theme Theme, botUserID string) *ReplyComposer {
	return &ReplyComposer{
		platform:  platform,
		reactions: reactions,
		theme:     theme,
		botUserID: botUserID,
		random:    rand.Reader,
	}
}

func (c *ReplyComposer) MaybeReply(ctx context.Context, event MessageEvent) error {
	// Fired when link or media previews load; not a new message.
	if event.IsEdit() {
		return nil
	}
	if event.User == c.botUserID {
		return nil
	}
	if !c.theme.Matches(event.Text) {
		return nil
	}

	threadTS := event.ReplyThread()

	if err := c.reactions.React(ctx, event.Channel, event.Timestamp); err != nil {
		return err
	}

	reply, err := c.pickReply()
	if err != nil {
		return err
	}

	req := MessageRequest{
		Channel:         event.Channel,
		ThreadTimestamp: nonEmpty(threadTS),
		Text:            reply,
	}
	if err := c.platform.PostMessage(ctx, req); err != nil {
		return &PlatformError{Op: "chat.postMessage", Err: err}
	}

	Info("Replied to %s in %s (thread %s)", event.User, event.Channel, threadTS)
	return nil
}

func (c *ReplyComposer) pickReply() (string, error) {
	if len(c.theme.Replies) == 0 {
		return "", errors.New("theme has no replies")
	}
	n, err := rand.Int(c.random, big.NewInt(int64(len(c.theme.Replies))))
	if err != nil {
		return "", fmt.Errorf("failed to pick reply: %w", err)
	}
	return c.theme.Replies[n.Int64()], nil
}

func nonEmpty(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}
