package routines

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/models"
)

type RoutineAddCmd struct {
	Name      string  `arg:"" help:"Routine name."`
	Frequency string  `short:"f" help:"Frequency (daily|specific-days)." default:"daily"`
	Days      string  `short:"d" help:"Comma-separated weekdays for specific-days frequency."`
	Goal      string  `short:"g" help:"Goal type (completion|counter|duration)." default:"completion"`
	Value     float64 `short:"v" help:"Goal value for counter/duration goals."`
	Unit      string  `short:"u" help:"Goal unit for counter goals (e.g. pages, glasses)."`
	Icon      string  `help:"Display icon."`
	Color     string  `help:"Display color (hex)."`
}

func (c *RoutineAddCmd) Run(ctx *cli.Context) error {
	var freqType constants.FrequencyType
	switch c.Frequency {
	case "daily":
		freqType = constants.FrequencyDaily
	case "specific-days":
		freqType = constants.FrequencySpecificDays
	default:
		return fmt.Errorf("invalid frequency type: %s (expected daily or specific-days)", c.Frequency)
	}

	freq := models.Frequency{Type: freqType}
	if freqType == constants.FrequencySpecificDays {
		if c.Days == "" {
			return fmt.Errorf("--days must be specified for specific-days frequency")
		}
		days, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		freq.Days = days
	}

	var goalType constants.GoalType
	switch c.Goal {
	case "completion":
		goalType = constants.GoalCompletion
	case "counter":
		goalType = constants.GoalCounter
	case "duration":
		goalType = constants.GoalDuration
	default:
		return fmt.Errorf("invalid goal type: %s (expected completion, counter, or duration)", c.Goal)
	}

	unit := c.Unit
	if goalType == constants.GoalDuration && unit == "" {
		unit = "min"
	}

	routine, err := ctx.Tracker.CreateRoutine(models.Routine{
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Frequency: freq,
		GoalType:  goalType,
		GoalValue: c.Value,
		GoalUnit:  unit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added routine: %s (ID: %s)\n", routine.Name, routine.ID)
	return nil
}
