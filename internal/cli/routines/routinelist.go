package routines

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type RoutineListCmd struct{}

func (c *RoutineListCmd) Run(ctx *cli.Context) error {
	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}

	if len(routines) == 0 {
		fmt.Println("No routines yet. Add one with 'wird routine add'.")
		return nil
	}

	fmt.Printf("Routines (%d):\n\n", len(routines))
	for _, r := range routines {
		fmt.Printf("  %-24s %-16s %-14s %s\n", r.Name, cli.FormatFrequency(r.Frequency), cli.FormatGoal(r), r.ID)
	}
	return nil
}
