package tasks

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type TaskDoneCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
	Date    string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.ResolveRoutine(c.Routine)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date, err = ctx.Today()
		if err != nil {
			return err
		}
	}

	task, err := ctx.Tracker.EnsureTaskForDate(routine.ID, date)
	if err != nil {
		return err
	}

	task, err = ctx.Tracker.ToggleCompletion(task.ID)
	if err != nil {
		return err
	}

	if task.Completed {
		fmt.Printf("Completed %s for %s\n", routine.Name, task.Date)
	} else {
		fmt.Printf("Reopened %s for %s\n", routine.Name, task.Date)
	}
	return nil
}
