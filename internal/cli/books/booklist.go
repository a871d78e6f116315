package books

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type BookListCmd struct {
	All bool `help:"Include finished books."`
}

func (c *BookListCmd) Run(ctx *cli.Context) error {
	books, err := ctx.Library.ListBooks()
	if err != nil {
		return err
	}

	shown := 0
	for _, b := range books {
		if b.Completed() && !c.All {
			continue
		}
		status := fmt.Sprintf("%d/%d", b.CurrentPage, b.TotalPages)
		if b.Completed() {
			status = "finished"
		}
		fmt.Printf("  %-32s %-20s %-10s %s\n", b.Title, b.Author, status, b.ID)
		shown++
	}

	if shown == 0 {
		if c.All {
			fmt.Println("No books yet. Add one with 'wird book add'.")
		} else {
			fmt.Println("No books in progress. Use --all to include finished books.")
		}
	}
	return nil
}
