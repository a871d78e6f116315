package books

import (
	"fmt"
	"time"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/utils"
)

type BookShowCmd struct {
	Book     string `arg:"" help:"Book title or ID."`
	Sessions int    `short:"n" help:"How many recent reading sessions to show." default:"5"`
}

func (c *BookShowCmd) Run(ctx *cli.Context) error {
	book, err := ctx.ResolveBook(c.Book)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", book.Title)
	if book.Author != "" {
		fmt.Printf("  Author:     %s\n", book.Author)
	}
	fmt.Printf("  ID:         %s\n", book.ID)
	fmt.Printf("  Progress:   %d/%d pages (%.0f%%)\n", book.CurrentPage, book.TotalPages,
		float64(book.CurrentPage)/float64(book.TotalPages)*100)
	fmt.Printf("  Started:    %s\n", book.StartDate.Format(constants.DateFormat))
	if book.LastReadDate != nil {
		fmt.Printf("  Last read:  %s\n", utils.FormatRelativeDate(*book.LastReadDate, time.Now()))
	}
	if book.CompletedDate != nil {
		fmt.Printf("  Finished:   %s\n", book.CompletedDate.Format(constants.DateFormat))
	}

	if len(book.ReadingSessions) > 0 && c.Sessions > 0 {
		start := len(book.ReadingSessions) - c.Sessions
		if start < 0 {
			start = 0
		}
		fmt.Printf("\nRecent sessions:\n")
		for _, s := range book.ReadingSessions[start:] {
			fmt.Printf("  %s  %d page(s)\n", s.Date.Format(constants.DateFormat), s.PagesRead)
		}
	}
	return nil
}
