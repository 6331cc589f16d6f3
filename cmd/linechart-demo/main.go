package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"

	"git.sr.ht/~whereswaldon/linechart/datasource"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

func main() {
	file := flag.String("file", "", "CSV trace to display; when empty, stdin is streamed if it is a pipe")
	flag.Parse()
	go func() {
		w := app.NewWindow(app.Title("linechart"))
		if err := loop(w, *file); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mutator := stream.NewMutator(ctx)
	controller := stream.NewController(ctx, w.Invalidate)
	source, err := datasource.NewSource(ctx, mutator)
	if err != nil {
		return err
	}
	expl := explorer.NewExplorer(w)

	var sessionID string
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		sessionID = source.LoadFromStream(datasource.ModeReplaying, f)
	} else if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		sessionID = source.LoadFromStream(datasource.ModeStreaming, os.Stdin)
	}

	ui := NewUI(controller, source, expl, sessionID)
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
