package books

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
)

type BookProgressCmd struct {
	Book string `arg:"" help:"Book title or ID."`
	Page int    `arg:"" help:"Current page number."`
}

func (c *BookProgressCmd) Run(ctx *cli.Context) error {
	book, err := ctx.ResolveBook(c.Book)
	if err != nil {
		return err
	}

	wasCompleted := book.Completed()
	book, err = ctx.Library.UpdateProgress(book.ID, c.Page)
	if err != nil {
		return err
	}

	fmt.Printf("%s: page %d/%d\n", book.Title, book.CurrentPage, book.TotalPages)
	if book.Completed() && !wasCompleted {
		fmt.Println("Finished! 🎉")
	}
	return nil
}
