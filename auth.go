package main

import (
	"net/http"

	"github.com/slack-go/slack"
)

// verifyRequest checks the v0 request signature Slack puts on every webhook.
// Missing or stale timestamps fail the check.
func verifyRequest(header http.Header, body []byte, signingSecret string) bool {
	sv, err := slack.NewSecretsVerifier(header, signingSecret)
	if err != nil {
		Warn("Request rejected: %v", err)
		return false
	}
	if _, err := sv.Write(body); err != nil {
		Warn("Request rejected: %v", err)
		return false
	}
	if err := sv.Ensure(); err != nil {
		Warn("Request rejected: %v", err)
		return false
	}
	return true
}
