package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bmssp/graph"
)

func TestGraph_NewNodeCount(t *testing.T) {
	g := graph.New(5)
	if got := g.NodeCount(); got != 5 {
		t.Fatalf("NodeCount() = %d, want 5", got)
	}
}

func TestGraph_AddEdgeHappyPath(t *testing.T) {
	g := graph.New(3)
	if err := g.AddEdge(0, 1, 4); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(0, 2, 1.5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	nb := g.Neighbors(0)
	if len(nb) != 2 {
		t.Fatalf("Neighbors(0) has %d edges, want 2", len(nb))
	}
	if nb[0].To != 1 || nb[0].Weight != 4 {
		t.Fatalf("Neighbors(0)[0] = %+v, want {To:1 Weight:4}", nb[0])
	}
	if nb[1].To != 2 || nb[1].Weight != 1.5 {
		t.Fatalf("Neighbors(0)[1] = %+v, want {To:2 Weight:1.5}", nb[1])
	}
}

func TestGraph_AddEdgeErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		u, v    int
		w       float64
		wantErr error
	}{
		{"u out of range", 5, 0, 1, graph.ErrVertexOutOfRange},
		{"v out of range", 0, 5, 1, graph.ErrVertexOutOfRange},
		{"u negative", -1, 0, 1, graph.ErrVertexOutOfRange},
		{"negative weight", 0, 1, -2, graph.ErrNegativeWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New(3)
			err := g.AddEdge(tt.u, tt.v, tt.w)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge(%d, %d, %g) error = %v, want %v", tt.u, tt.v, tt.w, err, tt.wantErr)
			}
		})
	}
}

func TestGraph_NeighborsOutOfRangeReadsNil(t *testing.T) {
	g := graph.New(2)
	if nb := g.Neighbors(5); nb != nil {
		t.Fatalf("Neighbors(5) = %v, want nil", nb)
	}
	if nb := g.Neighbors(-1); nb != nil {
		t.Fatalf("Neighbors(-1) = %v, want nil", nb)
	}
}

func TestGraph_NeighborsVertexWithoutEdgesIsEmpty(t *testing.T) {
	g := graph.New(2)
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if nb := g.Neighbors(1); len(nb) != 0 {
		t.Fatalf("Neighbors(1) = %v, want empty", nb)
	}
}

func TestGraph_WithCapacityHint(t *testing.T) {
	g := graph.New(2, graph.WithCapacityHint(8))
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if nb := g.Neighbors(0); len(nb) != 1 {
		t.Fatalf("Neighbors(0) has %d edges, want 1", len(nb))
	}
}
