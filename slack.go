package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

const alreadyReactedError = "already_reacted"

// slackPlatform implements Platform on top of the Slack Web API.
type slackPlatform struct {
	client *slack.Client
}

func newSlackPlatform(client *slack.Client) *slackPlatform {
	return &slackPlatform{client: client}
}

// botUserID asks Slack who the token belongs to.
func (p *slackPlatform) botUserID(ctx context.Context) (string, error) {
	resp, err := p.client.AuthTestContext(ctx)
	if err != nil {
		return "", fmt.Errorf("auth.test failed: %w", err)
	}
	if resp.UserID == "" {
		return "", errors.New("auth.test returned no user_id")
	}
	return resp.UserID, nil
}

func (p *slackPlatform) AddReaction(ctx context.Context, req ReactionRequest) (ReactionOutcome, error) {
	err := p.client.AddReactionContext(ctx, req.Name, slack.NewRefToMessage(req.Channel, req.Timestamp))
	switch {
	case err == nil:
		return ReactionApplied, nil
	case isAlreadyReacted(err):
		return ReactionAlreadyPresent, nil
	default:
		return ReactionFailed, err
	}
}

func (p *slackPlatform) PostMessage(ctx context.Context, req MessageRequest) error {
	options := []slack.MsgOption{slack.MsgOptionText(req.Text, false)}
	if ts, ok := req.ThreadTimestamp.Get(); ok && ts != "" {
		options = append(options, slack.MsgOptionTS(ts))
	}

	_, _, err := p.client.PostMessageContext(ctx, req.Channel, options...)
	return err
}

func isAlreadyReacted(err error) bool {
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err == alreadyReactedError
	}
	return err.Error() == alreadyReactedError
}
