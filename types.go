package main

import (
	"github.com/samber/mo"
	"github.com/slack-go/slack/slackevents"
)

type EventKind int

const (
	KindUnhandled EventKind = iota
	KindReactionAdded
	KindMessage
)

func (k EventKind) String() string {
	switch k {
	case KindReactionAdded:
		return string(slackevents.ReactionAdded)
	case KindMessage:
		return string(slackevents.Message)
	default:
		return "unhandled"
	}
}

// InboundEvent is one of ReactionAddedEvent, MessageEvent or UnhandledEvent.
type InboundEvent interface {
	Kind() EventKind
}

type ReactionAddedEvent struct {
	ItemChannel   string
	ItemTimestamp string
	User          string
	// Reaction is only needed once the user is known not to be the bot.
	Reaction mo.Option[string]
}

func (ReactionAddedEvent) Kind() EventKind { return KindReactionAdded }

type MessageEvent struct {
	Channel   string
	Timestamp string
	// ThreadTimestamp is set only when the message was posted inside a thread.
	ThreadTimestamp mo.Option[string]
	User            string
	Text            string
	Subtype         mo.Option[string]
}

func (MessageEvent) Kind() EventKind { return KindMessage }

// ReplyThread is the thread a reply belongs in: the existing thread if
// there is one, otherwise a new thread rooted at this message.
func (e MessageEvent) ReplyThread() string {
	return e.ThreadTimestamp.OrElse(e.Timestamp)
}

func (e MessageEvent) IsEdit() bool {
	return e.Subtype.OrEmpty() == messageChangedSubtype
}

type UnhandledEvent struct {
	Type string
}

func (UnhandledEvent) Kind() EventKind { return KindUnhandled }

// ReactionRequest is an add-reaction call to the platform.
type ReactionRequest struct {
	Channel   string
	Timestamp string
	Name      string
}

// MessageRequest is a post-message call to the platform. ThreadTimestamp is
// left out of the outbound call when absent.
type MessageRequest struct {
	Channel         string
	ThreadTimestamp mo.Option[string]
	Text            string
}
