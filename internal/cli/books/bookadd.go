package books

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/models"
)

type BookAddCmd struct {
	Title  string `arg:"" help:"Book title."`
	Pages  int    `short:"p" help:"Total page count." required:""`
	Author string `short:"a" help:"Author name."`
	Cover  string `help:"Cover image URL to download and cache."`
}

func (c *BookAddCmd) Run(ctx *cli.Context) error {
	book, err := ctx.Library.AddBook(models.Book{
		Title:      c.Title,
		Author:     c.Author,
		TotalPages: c.Pages,
		CoverURL:   c.Cover,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added book: %s (%d pages, ID: %s)\n", book.Title, book.TotalPages, book.ID)
	return nil
}
