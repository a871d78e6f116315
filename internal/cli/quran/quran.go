package quran

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/models"
)

type markFlags struct {
	Page int    `arg:"" help:"Mushaf page number (1-604)."`
	As   string `short:"a" help:"State to change (read|memorized|revised)." default:"read" enum:"read,memorized,revised"`
}

type QuranMarkCmd struct {
	markFlags
}

func (c *QuranMarkCmd) Run(ctx *cli.Context) error {
	page, err := setState(ctx, c.Page, c.As, true)
	if err != nil {
		return err
	}
	fmt.Printf("Page %d (juz %d) marked %s\n", page.ID, models.JuzForPage(page.ID), c.As)
	return nil
}

type QuranUnmarkCmd struct {
	markFlags
}

func (c *QuranUnmarkCmd) Run(ctx *cli.Context) error {
	before, err := ctx.Quran.Page(c.Page)
	if err != nil {
		return err
	}

	page, err := setState(ctx, c.Page, c.As, false)
	if err != nil {
		return err
	}
	fmt.Printf("Page %d (juz %d) unmarked %s\n", page.ID, models.JuzForPage(page.ID), c.As)
	if c.As == "memorized" && before.IsRevised {
		fmt.Println("Its revised mark was cleared as well.")
	}
	return nil
}

func setState(ctx *cli.Context, pageID int, state string, on bool) (models.QuranPage, error) {
	switch state {
	case "read":
		return ctx.Quran.MarkRead(pageID, on)
	case "memorized":
		return ctx.Quran.MarkMemorized(pageID, on)
	case "revised":
		return ctx.Quran.MarkRevised(pageID, on)
	default:
		return models.QuranPage{}, fmt.Errorf("invalid state: %s", state)
	}
}

type QuranStatsCmd struct{}

func (c *QuranStatsCmd) Run(ctx *cli.Context) error {
	stats, err := ctx.Quran.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Quran progress:")
	fmt.Printf("  Read:       %d/604\n", stats.TotalRead)
	fmt.Printf("  Memorized:  %d/604 (%.1f%%)\n", stats.TotalMemorized, stats.CompletionPercentage)
	fmt.Printf("  Revised:    %d/604\n", stats.TotalRevised)

	summaries, err := ctx.Quran.ByJuz()
	if err != nil {
		return err
	}
	fmt.Println("\nBy juz:")
	for _, j := range summaries {
		if j.Memorized == 0 && j.Read == 0 {
			continue
		}
		fmt.Printf("  Juz %2d (p.%3d-%3d): read %2d  memorized %2d  revised %2d\n",
			j.Juz, j.FirstPage, j.LastPage, j.Read, j.Memorized, j.Revised)
	}
	return nil
}

type QuranReviseCmd struct {
	Limit int `short:"n" help:"How many pages to suggest." default:"10"`
}

func (c *QuranReviseCmd) Run(ctx *cli.Context) error {
	pages, err := ctx.Quran.PagesToRevise(c.Limit)
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		fmt.Println("No memorized pages to revise yet.")
		return nil
	}

	fmt.Printf("Pages due for revision (%d):\n", len(pages))
	for _, p := range pages {
		last := "never"
		if p.LastRevised != nil {
			last = p.LastRevised.Format("2006-01-02")
		}
		fmt.Printf("  Page %3d (juz %2d)  last revised: %s\n", p.ID, models.JuzForPage(p.ID), last)
	}
	return nil
}
