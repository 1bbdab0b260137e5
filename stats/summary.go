package stats

import "github.com/gridnet-dev/gridnet/gmath"

// Summary condenses the occupancy table into a handful of numbers for logs
// and monitoring.
type Summary struct {
	// Worlds is the number of worlds the grid spans.
	Worlds int
	// Chunks is the number of distinct occupied chunks over all worlds.
	Chunks int
	// Nodes is the number of located nodes counted by the tracker.
	Nodes int
	// MeanNodesPerChunk and StdDevNodesPerChunk describe how evenly the
	// grid's nodes spread over its chunks.
	MeanNodesPerChunk   float64
	StdDevNodesPerChunk float64
}

// Summary computes occupancy statistics for the grid's current footprint.
func (s *Service) Summary() Summary {
	var counts []float64
	var nodes int

	worlds := s.tracker.Regions()
	for _, w := range worlds {
		for _, c := range s.tracker.ChunksIn(w) {
			n := s.tracker.Count(w, c)
			counts = append(counts, float64(n))
			nodes += n
		}
	}

	return Summary{
		Worlds:              len(worlds),
		Chunks:              len(counts),
		Nodes:               nodes,
		MeanNodesPerChunk:   gmath.Mean(counts),
		StdDevNodesPerChunk: gmath.StandardDeviation(counts),
	}
}
