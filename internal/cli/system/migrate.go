package system

import (
	"fmt"
	"io/fs"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/migration"
	"github.com/wird-app/wird/internal/storage/sqlite"
	"github.com/wird-app/wird/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// The JSON backend migrates its document transparently at load time.
		fmt.Println("JSON storage migrates automatically on load. Nothing to do.")
		return nil
	}

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}

	runner := migration.NewRunner(sqliteStore.DB(), subFS)
	count, err := runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
