package main

import (
	"context"
	"fmt"
)

type ReactionOutcome int

const (
	ReactionApplied ReactionOutcome = iota
	ReactionAlreadyPresent
	ReactionFailed
)

// Platform is the outbound side of the messaging platform.
type Platform interface {
	AddReaction(ctx context.Context, req ReactionRequest) (ReactionOutcome, error)
	PostMessage(ctx context.Context, req MessageRequest) error
}

// PlatformError is an outbound call that failed for any reason other than
// the reaction already being there.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

type ReactionResponder struct {
	platform Platform
	emoji    string
}

func NewReactionResponder(platform Platform, emoji string) *ReactionResponder {
	return &ReactionResponder{platform: platform, emoji: emoji}
}

// React puts the theme emoji on a message. A reaction that is already there
// counts as success.
func (r *ReactionResponder) React(ctx context.Context, channel, timestamp string) error {
	req := ReactionRequest{Channel: channel, Timestamp: timestamp, Name: r.emoji}

	outcome, err := r.platform.AddReaction(ctx, req)
	switch outcome {
	case ReactionApplied:
		Debug("Added :%s: to %s/%s", r.emoji, channel, timestamp)
		return nil
	case ReactionAlreadyPresent:
		Debug("Already reacted with :%s: on %s/%s", r.emoji, channel, timestamp)
		return nil
	default:
		if err == nil {
			err = fmt.Errorf("unknown reaction outcome %d", outcome)
		}
		return &PlatformError{Op: "reactions.add", Err: err}
	}
}
