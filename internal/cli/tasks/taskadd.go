package tasks

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type TaskAddCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
	Date    string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
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

	task, err := ctx.Tracker.CreateTaskForDate(routine.ID, date)
	if err != nil {
		return err
	}

	fmt.Printf("Added task for %s on %s (ID: %s)\n", routine.Name, task.Date, task.ID)
	return nil
}
