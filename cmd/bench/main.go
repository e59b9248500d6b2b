package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/basketweave"
	"github.com/aretw0/basketweave/pkg/core"
	"github.com/go-git/go-billy/v5/memfs"
)

func main() {
	baskets := flag.Int("baskets", 50, "Number of baskets to generate")
	notes := flag.Int("notes", 200, "Number of notes per basket")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "basketweave_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d baskets x %d notes...\n", *baskets, *notes)
	startGen := time.Now()
	forest, err := generate(*baskets, *notes)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	// Run 1: empty directory
	fmt.Println("Materializing (Run 1 - Fresh)...")
	fresh := time.Now()
	dir, err := basketweave.Materialize(ctx, benchDir, forest, basketweave.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	duration := time.Since(fresh)

	// Run 2: same directory, html files keep numbering after the existing ones
	fmt.Println("Materializing (Run 2 - Existing)...")
	again := time.Now()
	if err := dir.Materialize(ctx, forest); err != nil {
		panic(err)
	}
	duration2 := time.Since(again)

	// Run 3: in memory, to separate serialization from disk cost
	fmt.Println("Materializing (Run 3 - Memory)...")
	inMemory := time.Now()
	memDir, err := basketweave.Materialize(ctx, "", forest, basketweave.WithFilesystem(memfs.New()))
	if err != nil {
		panic(err)
	}
	duration3 := time.Since(inMemory)

	stats := memDir.Stats()
	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d baskets, %d notes, %d html files):\n", stats.Baskets, stats.Notes, stats.HTMLFiles)
	fmt.Printf("  Fresh:    %v\n", duration)
	fmt.Printf("  Existing: %v\n", duration2)
	fmt.Printf("  Memory:   %v\n", duration3)
	fmt.Printf("--------------------------------------------------\n")
}

// generate builds a flat forest of free baskets alternating text and html notes.
func generate(basketCount, noteCount int) (core.Forest, error) {
	todo, err := core.NewState("To Do", "todo_unchecked")
	if err != nil {
		return core.Forest{}, err
	}
	tag, err := core.NewTag("To Do", []*core.State{todo})
	if err != nil {
		return core.Forest{}, err
	}

	now := time.Now().Truncate(time.Second)
	times := core.Timestamps{LastModification: now, Added: now}

	roots := make([]*core.Basket, 0, basketCount)
	for i := 0; i < basketCount; i++ {
		b, err := core.NewBasket(fmt.Sprintf("Basket %d", i), core.BasketFolder(fmt.Sprintf("basket%d", i)))
		if err != nil {
			return core.Forest{}, err
		}
		for j := 0; j < noteCount; j++ {
			var content core.Content = core.TextContent(fmt.Sprintf("Benchmark note %d", j))
			var opts []core.NoteOption
			if j%2 == 1 {
				content = core.HTMLContent(fmt.Sprintf("<p>Benchmark note <b>%d</b></p>", j))
			} else {
				opts = append(opts, core.NoteStates(todo))
			}
			opts = append(opts, core.NoteGeometry(200, (j%10)*210, (j/10)*60))
			n, err := core.NewNote(content, times, opts...)
			if err != nil {
				return core.Forest{}, err
			}
			if err := b.AddNote(n); err != nil {
				return core.Forest{}, err
			}
		}
		roots = append(roots, b)
	}
	return core.NewForest(roots, []*core.Tag{tag})
}
