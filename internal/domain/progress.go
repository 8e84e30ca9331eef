package domain

import "coursecraft/internal/model"

// Progress floor(100 * completed / total); 0 when there are no sessions
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return completed * 100 / total
}

// SessionProgress progress from the sessions' completion flags
func SessionProgress(sessions []model.Session) int {
	done := 0
	for i := range sessions {
		if sessions[i].IsCompleted {
			done++
		}
	}
	return Progress(done, len(sessions))
}
