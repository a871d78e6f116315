package books

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wird-app/wird/internal/cli"
)

type BookDeleteCmd struct {
	Book string `arg:"" help:"Book title or ID."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BookDeleteCmd) Run(ctx *cli.Context) error {
	book, err := ctx.ResolveBook(c.Book)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete book %q and its reading history? [y/N]: ", book.Title)
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

	if err := ctx.Library.DeleteBook(book.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted book: %s\n", book.Title)
	return nil
}
