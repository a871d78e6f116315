package tasks

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type TaskProgressCmd struct {
	Routine string  `arg:"" help:"Routine name or ID."`
	Value   float64 `arg:"" help:"Progress value (absolute, or relative with --add)."`
	Add     bool    `short:"a" help:"Add the value to current progress instead of replacing it."`
	Date    string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *TaskProgressCmd) Run(ctx *cli.Context) error {
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

	if c.Add {
		task, err = ctx.Tracker.AddProgress(task.ID, c.Value)
	} else {
		task, err = ctx.Tracker.SetProgress(task.ID, c.Value)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", routine.Name, cli.FormatTaskProgress(routine, task))
	if task.Progress != nil && *task.Progress >= routine.GoalValue && !task.Completed {
		fmt.Println("Goal reached. Mark it done with 'wird task done'.")
	}
	return nil
}
