package webhook

import (
	"strings"
	"time"

	"github-activity/internal/model"
	"github-activity/pkg/datemath"
)

// GitHub event names carried in the X-GitHub-Event header.
const (
	EventPush        = "push"
	EventPullRequest = "pull_request"
)

// Pull request sub-actions that produce records.
const (
	PullRequestOpened = "opened"
	PullRequestClosed = "closed"
)

const branchRefPrefix = "refs/heads/"

// Normalize maps a GitHub delivery to a stored event. The second return is
// false when the delivery is outside the supported push / opened / merged set.
// now is formatted once and becomes the record's timestamp.
func Normalize(eventType string, p Payload, now time.Time) (model.Event, bool) {
	timestamp := datemath.Ordinal(now)

	switch eventType {
	case EventPush:
		return normalizePush(p, timestamp), true
	case EventPullRequest:
		return normalizePullRequest(p, timestamp)
	default:
		return model.Event{}, false
	}
}

// normalizePush handles push events; every push produces a record.
func normalizePush(p Payload, timestamp string) model.Event {
	author := firstString(p, []interface{}{"pusher", "name"}, []interface{}{"sender", "login"})

	return model.Event{
		RequestID:  p.StringOr("", "after"),
		Author:     author,
		Action:     model.ActionPush,
		FromBranch: "",
		ToBranch:   strings.TrimPrefix(p.StringOr("", "ref"), branchRefPrefix),
		Timestamp:  timestamp,
	}
}

// normalizePullRequest handles opened and merged pull requests.
func normalizePullRequest(p Payload, timestamp string) (model.Event, bool) {
	action, _ := p.String("action")

	event := model.Event{
		FromBranch: p.StringOr("", "pull_request", "head", "ref"),
		ToBranch:   p.StringOr("", "pull_request", "base", "ref"),
		Timestamp:  timestamp,
	}
	event.RequestID, _ = p.Identifier("pull_request", "id")

	switch {
	case action == PullRequestOpened:
		event.Action = model.ActionPullRequest
		event.Author = firstString(p, []interface{}{"pull_request", "user", "login"})
		return event, true

	case action == PullRequestClosed && p.True("pull_request", "merged"):
		// The merger is the sender; fall back to the PR author.
		event.Action = model.ActionMerge
		event.Author = firstString(p,
			[]interface{}{"sender", "login"},
			[]interface{}{"pull_request", "user", "login"},
		)
		return event, true

	default:
		return model.Event{}, false
	}
}

// firstString returns the first present string among paths, or nil.
func firstString(p Payload, paths ...[]interface{}) *string {
	for _, path := range paths {
		if s, ok := p.String(path...); ok {
			return &s
		}
	}
	return nil
}
