package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gridnet-dev/gridnet"
	"github.com/gridnet-dev/gridnet/assert"
	"github.com/gridnet-dev/gridnet/event"
	"github.com/gridnet-dev/gridnet/settings"
	"github.com/gridnet-dev/gridnet/stats"
	"github.com/gridnet-dev/gridnet/worker"
	"github.com/gridnet-dev/gridnet/world"
)

// The following program runs a scripted grid scenario and prints the chunk
// footprint the grid ends up with.
func main() {
	logger := slog.Default()

	conf, err := settings.Load("settings.toml")
	if err != nil {
		if err := settings.SaveDefault("settings.toml"); err != nil {
			logger.Error("unable to create settings file", "error", err)
			os.Exit(1)
		}
		conf = settings.DefaultSettings()
	}
	assert.Enabled = conf.Debug.Assertions

	scenarioPath := ""
	if len(os.Args) > 1 {
		scenarioPath = os.Args[1]
	}
	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		logger.Error("unable to load scenario", "error", err)
		os.Exit(1)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	worlds := make(map[string]*world.World, len(scenario.Worlds))
	for _, spec := range scenario.Worlds {
		worlds[spec.Name] = world.New(spec.Name)
	}
	nodes := make(map[string]*gridnet.Node, len(scenario.Nodes))
	for _, spec := range scenario.Nodes {
		nodes[spec.ID] = gridnet.NewInWorldNode(worlds[spec.World], world.BlockPos(spec.Pos))
	}

	g := gridnet.New(logger)
	svc := stats.Register(g)

	recording := &bytes.Buffer{}
	g.Subscribe(func(ev event.Event) {
		switch ev := ev.(type) {
		case event.ChunkAddedEvent:
			logger.Info("chunk occupied", "world", ev.WorldName, "chunk", ev.Position)
		case event.ChunkRemovedEvent:
			logger.Info("chunk vacated", "world", ev.WorldName, "chunk", ev.Position)
		}
		recording.Write(ev.Encode())
	})

	q := worker.NewSerial(conf.Harness.QueueBuffer)
	for _, op := range scenario.Script {
		n := nodes[op.Node]
		switch op.Op {
		case "add":
			q.Submit(func() { g.AddNode(n) })
		case "remove":
			q.Submit(func() { g.RemoveNode(n) })
		}
	}
	q.Close()

	summary := svc.Summary()
	fmt.Printf("grid %d spans %d chunk(s) in %d world(s), %d node(s), %.2f nodes/chunk (stddev %.2f)\n",
		g.ID(), summary.Chunks, summary.Worlds, summary.Nodes,
		summary.MeanNodesPerChunk, summary.StdDevNodesPerChunk)
	for _, w := range svc.Worlds() {
		fmt.Printf("  %s: %v\n", w.Name(), svc.Chunks(w))
	}
	if conf.Stats.Digest {
		fmt.Printf("footprint digest: %#x\n", svc.Digest())
	}

	events, err := event.DecodeEvents(recording.Bytes())
	if err != nil {
		logger.Error("unable to decode recorded events", "error", err)
		os.Exit(1)
	}
	fmt.Printf("recorded %d occupancy transition(s)\n", len(events))
}
