package usecase

import "github-activity/internal/event"

// clampLimit keeps a requested limit within (0, MaxRecentLimit].
func (uc *implUseCase) clampLimit(limit int) int {
	if limit <= 0 {
		return event.DefaultRecentLimit
	}
	if limit > event.MaxRecentLimit {
		return event.MaxRecentLimit
	}
	return limit
}
