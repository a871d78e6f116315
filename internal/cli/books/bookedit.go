package books

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type BookEditCmd struct {
	Book string `arg:"" help:"Book title or ID."`

	Title  string `help:"New title."`
	Author string `short:"a" help:"New author."`
	Pages  int    `short:"p" help:"New total page count."`
}

func (c *BookEditCmd) Run(ctx *cli.Context) error {
	book, err := ctx.ResolveBook(c.Book)
	if err != nil {
		return err
	}

	book, err = ctx.Library.EditBook(book.ID, c.Title, c.Author, c.Pages)
	if err != nil {
		return err
	}

	fmt.Printf("Updated book: %s\n", book.Title)
	return nil
}
