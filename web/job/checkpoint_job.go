// Package job contains the scheduled maintenance jobs run by the web
// server's cron instance.
package job

import (
	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/logger"
)

// CheckpointJob flushes the sqlite WAL back into the main database
// file so the on-disk file stays current between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
