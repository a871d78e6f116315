package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/cli/backups"
	"github.com/wird-app/wird/internal/cli/books"
	quranCmd "github.com/wird-app/wird/internal/cli/quran"
	"github.com/wird-app/wird/internal/cli/routines"
	"github.com/wird-app/wird/internal/cli/settings"
	"github.com/wird-app/wird/internal/cli/system"
	"github.com/wird-app/wird/internal/cli/tasks"
	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/covers"
	"github.com/wird-app/wird/internal/library"
	"github.com/wird-app/wird/internal/logger"
	"github.com/wird-app/wird/internal/quran"
	"github.com/wird-app/wird/internal/storage"
	"github.com/wird-app/wird/internal/storage/sqlite"
	"github.com/wird-app/wird/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.db for SQLite, .json for a plain document)." type:"path" default:"~/.config/wird/wird.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize wird storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today   tasks.TodayCmd    `cmd:"" help:"Show due and completed tasks for today."`
	Routine struct {
		Add    routines.RoutineAddCmd    `cmd:"" help:"Add a new routine."`
		List   routines.RoutineListCmd   `cmd:"" help:"List all routines."`
		Show   routines.RoutineShowCmd   `cmd:"" help:"Show a routine's details and streak."`
		Edit   routines.RoutineEditCmd   `cmd:"" help:"Edit an existing routine."`
		Delete routines.RoutineDeleteCmd `cmd:"" help:"Delete a routine and its tasks."`
	} `cmd:"" help:"Manage routines."`
	Task struct {
		Add      tasks.TaskAddCmd      `cmd:"" help:"Record a task for a routine on a date."`
		Done     tasks.TaskDoneCmd     `cmd:"" help:"Toggle a task's completion."`
		Progress tasks.TaskProgressCmd `cmd:"" help:"Record progress on a counter/duration task."`
	} `cmd:"" help:"Manage dated tasks."`
	Quran struct {
		Mark   quranCmd.QuranMarkCmd   `cmd:"" help:"Mark a page read, memorized, or revised."`
		Unmark quranCmd.QuranUnmarkCmd `cmd:"" help:"Clear a page's read, memorized, or revised mark."`
		Stats  quranCmd.QuranStatsCmd  `cmd:"" help:"Show memorization progress."`
		Revise quranCmd.QuranReviseCmd `cmd:"" help:"Suggest pages due for revision."`
	} `cmd:"" help:"Track Quran reading and memorization."`
	Book struct {
		Add      books.BookAddCmd      `cmd:"" help:"Add a book."`
		List     books.BookListCmd     `cmd:"" help:"List books."`
		Show     books.BookShowCmd     `cmd:"" help:"Show a book's details and sessions."`
		Progress books.BookProgressCmd `cmd:"" help:"Update a book's current page."`
		Edit     books.BookEditCmd     `cmd:"" help:"Edit a book."`
		Delete   books.BookDeleteCmd   `cmd:"" help:"Delete a book and its sessions."`
	} `cmd:"" help:"Manage the reading log."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal routine, Quran, and reading tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the backend by file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	coverCache := covers.NewCache(filepath.Join(configDir, constants.CoversDirName))
	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.NewService(store),
		Quran:   quran.NewService(store),
		Library: library.NewService(store, coverCache),
	}

	// Commands that manage the store lifecycle themselves load it on their
	// own; everything else needs it loaded up front.
	selected := ""
	if ctx.Selected() != nil {
		selected = ctx.Selected().Name
	}
	switch selected {
	case "init", "migrate", "tui", "restore":
	default:
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
