package auth

import (
	"time"

	"classroom-backend/internal/logger"
	"classroom-backend/internal/repository"
)

// DefaultSweepInterval is how often expired sessions are purged
const DefaultSweepInterval = time.Hour

// RunSessionSweeper periodically deletes expired sessions so revoked and
// stale rows do not accumulate. It blocks until stop is closed; callers run
// it in a goroutine.
func RunSessionSweeper(sessions repository.SessionRepositoryInterface, interval time.Duration, stop <-chan struct{}) {
	log := logger.New().WithField("component", "session_sweeper")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := sessions.DeleteExpired(time.Now())
			if err != nil {
				log.Errorf("Failed to sweep expired sessions: %v", err)
				continue
			}
			if deleted > 0 {
				log.Infof("Swept %d expired sessions", deleted)
			}
		case <-stop:
			return
		}
	}
}
