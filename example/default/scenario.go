package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of grid mutations over a handful of worlds,
// read from a YAML file.
type Scenario struct {
	Worlds []WorldSpec `yaml:"worlds"`
	Nodes  []NodeSpec  `yaml:"nodes"`
	Script []OpSpec    `yaml:"script"`
}

type WorldSpec struct {
	Name string `yaml:"name"`
}

type NodeSpec struct {
	ID    string   `yaml:"id"`
	World string   `yaml:"world"`
	Pos   [3]int32 `yaml:"pos"`
}

type OpSpec struct {
	Op   string `yaml:"op"` // "add" or "remove"
	Node string `yaml:"node"`
}

// LoadScenario reads and validates the scenario at path. An empty path
// returns the built-in demo scenario.
func LoadScenario(path string) (Scenario, error) {
	if strings.TrimSpace(path) == "" {
		return defaultScenario(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return Scenario{}, fmt.Errorf("scenario.yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario.yaml: %w", err)
	}
	return sc, nil
}

// Validate checks that every node references a declared world and every
// script entry references a declared node.
func (sc Scenario) Validate() error {
	if len(sc.Worlds) == 0 {
		return fmt.Errorf("no worlds declared")
	}
	worlds := map[string]bool{}
	for _, w := range sc.Worlds {
		if w.Name == "" {
			return fmt.Errorf("world with empty name")
		}
		if worlds[w.Name] {
			return fmt.Errorf("duplicate world %q", w.Name)
		}
		worlds[w.Name] = true
	}
	nodes := map[string]bool{}
	for _, n := range sc.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node with empty id")
		}
		if nodes[n.ID] {
			return fmt.Errorf("duplicate node %q", n.ID)
		}
		if !worlds[n.World] {
			return fmt.Errorf("node %q references unknown world %q", n.ID, n.World)
		}
		nodes[n.ID] = true
	}
	for i, op := range sc.Script {
		if op.Op != "add" && op.Op != "remove" {
			return fmt.Errorf("script entry %d: unknown op %q", i, op.Op)
		}
		if !nodes[op.Node] {
			return fmt.Errorf("script entry %d: unknown node %q", i, op.Node)
		}
	}
	return nil
}

func defaultScenario() Scenario {
	return Scenario{
		Worlds: []WorldSpec{{Name: "overworld"}, {Name: "nether"}},
		Nodes: []NodeSpec{
			{ID: "controller", World: "overworld", Pos: [3]int32{16, 64, 16}},
			{ID: "drive", World: "overworld", Pos: [3]int32{17, 64, 30}},
			{ID: "terminal", World: "overworld", Pos: [3]int32{48, 64, 16}},
			{ID: "pump", World: "nether", Pos: [3]int32{16, 32, 16}},
		},
		Script: []OpSpec{
			{Op: "add", Node: "controller"},
			{Op: "add", Node: "drive"},
			{Op: "add", Node: "terminal"},
			{Op: "add", Node: "pump"},
			{Op: "remove", Node: "controller"},
			{Op: "remove", Node: "drive"},
		},
	}
}
