// morlock is a minimal line-oriented REPL driving the engine façade:
//
//	position <fen>|startpos
//	go
//	move <from><to>[promo]
//	quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/herohde/fidechess/pkg/engine"
	"github.com/herohde/fidechess/pkg/search"
)

var (
	noise = flag.Int("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	depth = flag.Uint("depth", 5, "Search depth in plies")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: morlock [options]

MORLOCK is a simple chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "morlock", "herohde",
		engine.WithZobrist(time.Now().UnixNano()),
		engine.WithOptions(engine.Options{
			Depth:   *depth,
			Noise:   uint(*noise),
			Profile: search.Default,
		}))

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 1)
	go engine.WriteStdoutLines(ctx, out)
	defer close(out)

	for line := range in {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "position":
			if len(fields) < 2 {
				out <- "error: usage: position <fen>|startpos"
				continue
			}
			pos := strings.Join(fields[1:], " ")
			if err := e.SetPosition(ctx, pos); err != nil {
				out <- fmt.Sprintf("error: %v", err)
			}

		case "go":
			m, ok := e.GetMove(ctx)
			if !ok {
				out <- "no move"
				continue
			}
			out <- fmt.Sprintf("bestmove %v", m)

		case "move":
			if len(fields) != 2 {
				out <- "error: usage: move <from><to>[promo]"
				continue
			}
			if err := e.Move(ctx, fields[1]); err != nil {
				out <- fmt.Sprintf("error: %v", err)
			}

		case "quit":
			e.Stop(ctx)
			return

		default:
			out <- fmt.Sprintf("error: unknown command %q", fields[0])
		}
	}
}
