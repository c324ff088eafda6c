package jobs

import (
	"context"
	"log"
	"os"

	"khidma/commands"
	"khidma/utils"

	"github.com/robfig/cron/v3"
)

var refreshCommand commands.SummaryCommand

// SetRefreshCommand installs the command the scheduler runs.
func SetRefreshCommand(cmd commands.SummaryCommand) {
	refreshCommand = cmd
}

// InitCronJobs schedules the periodic snapshot refresh. The schedule comes
// from SNAPSHOT_CRON, defaulting to midnight daily.
func InitCronJobs(c *cron.Cron) error {
	spec := os.Getenv("SNAPSHOT_CRON")
	if spec == "" {
		spec = "0 0 * * *"
	}

	_, err := c.AddFunc(spec, func() {
		if refreshCommand == nil {
			utils.LogError("scheduled refresh skipped: no command installed")
			return
		}
		utils.LogInfo("running scheduled snapshot refresh")
		if err := refreshCommand.Execute(context.Background()); err != nil {
			utils.LogError("scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
