package model

// WebhookSource names a delivering platform; it keys the rate limiter.
type WebhookSource string

const (
	SourceGitHub WebhookSource = "github"
)

// Action is the normalized kind of a stored event.
type Action string

const (
	ActionPush        Action = "PUSH"
	ActionPullRequest Action = "PULL_REQUEST"
	ActionMerge       Action = "MERGE"
)

// Valid reports whether a is one of the three stored actions.
func (a Action) Valid() bool {
	switch a {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	}
	return false
}

// Event is the normalized record persisted for every accepted webhook.
// It is written once and never changed.
type Event struct {
	RequestID  string  `json:"request_id" bson:"request_id"`   // Commit hash (push) or PR id (pull request)
	Author     *string `json:"author" bson:"author"`           // nil when the payload names nobody
	Action     Action  `json:"action" bson:"action"`           // PUSH, PULL_REQUEST or MERGE
	FromBranch string  `json:"from_branch" bson:"from_branch"` // Empty for PUSH
	ToBranch   string  `json:"to_branch" bson:"to_branch"`     // Target branch
	Timestamp  string  `json:"timestamp" bson:"timestamp"`     // Receipt time, e.g. "1st April 2021 - 09:30 PM UTC"
}

// AuthorName returns the author or "" when unknown.
func (e Event) AuthorName() string {
	if e.Author == nil {
		return ""
	}
	return *e.Author
}
