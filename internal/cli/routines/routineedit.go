package routines

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/constants"
)

type RoutineEditCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`

	Name      string   `help:"New routine name."`
	Frequency string   `short:"f" help:"New frequency (daily|specific-days)."`
	Days      string   `short:"d" help:"Comma-separated weekdays for specific-days frequency."`
	Value     *float64 `short:"v" help:"New goal value."`
	Unit      string   `short:"u" help:"New goal unit."`
	Icon      string   `help:"New display icon."`
	Color     string   `help:"New display color (hex)."`
}

func (c *RoutineEditCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.ResolveRoutine(c.Routine)
	if err != nil {
		return err
	}

	if c.Name != "" {
		routine.Name = c.Name
	}
	if c.Frequency != "" {
		switch c.Frequency {
		case "daily":
			routine.Frequency.Type = constants.FrequencyDaily
			routine.Frequency.Days = nil
		case "specific-days":
			routine.Frequency.Type = constants.FrequencySpecificDays
		default:
			return fmt.Errorf("invalid frequency type: %s (expected daily or specific-days)", c.Frequency)
		}
	}
	if c.Days != "" {
		days, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		routine.Frequency.Days = days
	}
	if c.Value != nil {
		routine.GoalValue = *c.Value
	}
	if c.Unit != "" {
		routine.GoalUnit = c.Unit
	}
	if c.Icon != "" {
		routine.Icon = c.Icon
	}
	if c.Color != "" {
		routine.Color = c.Color
	}

	updated, err := ctx.Tracker.UpdateRoutine(routine)
	if err != nil {
		return err
	}

	fmt.Printf("Updated routine: %s\n", updated.Name)
	return nil
}
