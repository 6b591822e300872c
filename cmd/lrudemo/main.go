package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"

	lrudict "github.com/justanr/lru-dict"
)

func main() {
	app := cli.NewApp()
	app.Name = "lrudemo"
	app.Usage = "walk through the lru-dict container semantics"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "capacity",
			Usage: "store capacity used for the walkthrough",
			Value: 3,
		},
	}
	app.Action = runDemo

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runDemo(ctx *cli.Context) error {
	capacity := ctx.Int("capacity")

	d, err := lrudict.New[string, string](capacity)
	if err != nil {
		return fmt.Errorf("new store: %w", err)
	}

	log.Println("lru-dict demo starting")
	log.Printf("config: capacity=%d", capacity)

	// -------------------------------------------------------------------
	// 1) Fill the store, then touch the oldest key.
	// -------------------------------------------------------------------
	d.Set("a", "A")
	d.Set("b", "B")
	d.Set("c", "C")
	log.Println("after seeding a, b, c:")
	dump(d)

	// Touch "a" so "b" becomes least-recently-used.
	if v, err := d.Get("a"); err == nil {
		log.Printf("GET a = %q (touches a -> newest)", v)
	}
	dump(d)

	// -------------------------------------------------------------------
	// 2) Overflow: inserting "d" evicts the current LRU (expected: "b").
	// -------------------------------------------------------------------
	if evicted := d.Set("d", "D"); evicted {
		log.Println("SET d: store was full, oldest entry evicted")
	}
	if !d.Contains("b") {
		log.Println("GET b: missing (evicted as LRU)")
	}
	dump(d)

	// -------------------------------------------------------------------
	// 3) Peek reads without reordering.
	// -------------------------------------------------------------------
	before, _ := d.LRU()
	if v, err := d.Peek(before); err == nil {
		log.Printf("PEEK %s = %q (no recency change)", before, v)
	}
	after, _ := d.LRU()
	log.Printf("LRU before peek=%s, after peek=%s", before, after)

	// -------------------------------------------------------------------
	// 4) Shrinking truncates the oldest entries in one batch.
	// -------------------------------------------------------------------
	if err := d.Resize(2); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	log.Println("after resize to 2 (oldest entries dropped):")
	dump(d)

	log.Printf("final state: %s", d)
	return nil
}

// dump renders the store oldest-to-newest; the traversal itself never
// changes recency order.
func dump(d *lrudict.Dict[string, string]) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"#", "Key", "Value", "Recency"})

	i := 0
	for k, v := range d.All() {
		recency := ""
		switch {
		case i == 0:
			recency = "oldest (next to evict)"
		case i == d.Len()-1:
			recency = "newest"
		}
		tw.AppendRow(table.Row{i, k, v, recency})
		i++
	}
	tw.Render()
}
