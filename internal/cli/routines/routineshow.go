package routines

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/scheduler"
	"github.com/wird-app/wird/internal/utils"
)

type RoutineShowCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
}

func (c *RoutineShowCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.ResolveRoutine(c.Routine)
	if err != nil {
		return err
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", routine.Name)
	fmt.Printf("  ID:        %s\n", routine.ID)
	fmt.Printf("  Frequency: %s\n", cli.FormatFrequency(routine.Frequency))
	fmt.Printf("  Goal:      %s\n", cli.FormatGoal(routine))
	fmt.Printf("  Created:   %s\n", routine.CreatedAt.Format(constants.DateFormat))

	day, err := utils.ParseDate(today)
	if err != nil {
		return err
	}
	if next, err := scheduler.NextOccurrence(routine.Frequency, day); err == nil {
		fmt.Printf("  Next due:  %s\n", next.Format(constants.DateFormat))
	}

	streak, err := ctx.Tracker.Streak(routine.ID, today)
	if err != nil {
		return err
	}
	fmt.Printf("  Streak:    %d\n", streak)

	return nil
}
