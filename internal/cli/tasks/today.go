package tasks

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/utils"
)

type TodayCmd struct {
	Date string `short:"d" help:"Show a specific date (YYYY-MM-DD) instead of today."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		var err error
		date, err = ctx.Today()
		if err != nil {
			return err
		}
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	view, err := ctx.Tracker.DayViewFor(date)
	if err != nil {
		return err
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n", utils.FormatDateByCalendar(day, settings.Calendar))

	if len(view.Pending) == 0 && len(view.Completed) == 0 {
		fmt.Println("Nothing due on this day.")
		return nil
	}

	if len(view.Pending) > 0 {
		fmt.Printf("Pending (%d):\n", len(view.Pending))
		for _, e := range view.Pending {
			fmt.Printf("  [ ] %-24s %s\n", e.Routine.Name, cli.FormatTaskProgress(e.Routine, e.Task))
		}
	}
	if len(view.Completed) > 0 {
		fmt.Printf("Completed (%d):\n", len(view.Completed))
		for _, e := range view.Completed {
			fmt.Printf("  [x] %-24s %s\n", e.Routine.Name, cli.FormatTaskProgress(e.Routine, e.Task))
		}
	}
	return nil
}
