package routines

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wird-app/wird/internal/cli"
)

type RoutineDeleteCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
	Yes     bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RoutineDeleteCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.ResolveRoutine(c.Routine)
	if err != nil {
		return err
	}

	tasks, err := ctx.Store.GetTasksForRoutine(routine.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete routine %q and its %d recorded task(s)? [y/N]: ", routine.Name, len(tasks))
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.DeleteRoutine(routine.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted routine: %s\n", routine.Name)
	return nil
}
