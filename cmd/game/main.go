package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"vectoroids/internal/config"
	"vectoroids/internal/draw"
	"vectoroids/internal/game"
	"vectoroids/internal/highscore"
	"vectoroids/internal/input"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	renderer, err := draw.NewRenderer(os.Stdout, draw.DefaultTermSizeFunc, game.LogicalWidth, game.LogicalHeight)
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	scores := highscore.Open(config.ScoreDBPath(), nil)
	defer scores.Close()

	draw.HideCursor(os.Stdout)
	defer draw.ShowCursor(os.Stdout)
	defer draw.ClearScreen(os.Stdout)

	stream := input.StartStream(bufio.NewReader(os.Stdin))
	g := game.New(renderer, stream, scores, game.NewHUD())
	if err := g.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
