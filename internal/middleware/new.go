package middleware

import (
	"github-activity/internal/webhook"
	"github-activity/pkg/log"
)

type Middleware struct {
	l        log.Logger
	security *webhook.SecurityValidator
}

func New(l log.Logger, security *webhook.SecurityValidator) Middleware {
	return Middleware{
		l:        l,
		security: security,
	}
}
