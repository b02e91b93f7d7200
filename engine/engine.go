package engine

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/katalvlaran/bmssp/bbll"
	"github.com/katalvlaran/bmssp/block"
	"github.com/katalvlaran/bmssp/key"
	"github.com/katalvlaran/bmssp/median"
	"github.com/katalvlaran/bmssp/pivot"
)

// Graph is the capability engine.Run needs from a graph adapter
// (spec.md §6): dense integer vertex ids and each vertex's outgoing
// edges. Identical in shape to pivot.Graph; declared again here so
// engine's public signature does not force callers to import pivot.
type Graph = pivot.Graph

// Options configures a Run.
type Options struct {
	rng    *rand.Rand
	logger *log.Logger
}

// Option customizes a Run (lvlath/dijkstra/types.go's functional-option
// pattern).
type Option func(*Options)

// WithRNG supplies the deterministic source driving every recursive
// frame's median selection. Defaults to median.NewRNG(0).
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithLogger supplies the logger BBLL frames use for NotFound
// diagnostics (spec.md §7). Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{rng: median.NewRNG(0), logger: log.Default()}
}

// Run computes shortest-path distances and predecessors from source to
// every vertex in g (spec.md §4.6 "Top-level run").
//
// Validates input eagerly: an empty graph, an out-of-range source, or
// any negative edge weight returns an error before the recursion
// begins (spec.md §7 InvalidInput); dist/pred are never allocated in
// that case.
func Run(g Graph, source int, opts ...Option) (*Result, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d N=%d", ErrSourceOutOfRange, source, n)
	}
	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make([]float64, n)
	pred := make([]int, n)
	for v := range dist {
		dist[v] = key.Inf
		pred[v] = -1
	}
	dist[source] = 0

	entries := make([]*block.Entry, n)
	for v := range entries {
		entries[v] = &block.Entry{Vertex: v, Val: key.Of(key.Inf, -1, v)}
	}

	k, t, l0 := deriveParameters(n)

	r := &runner{
		g:       g,
		dist:    dist,
		pred:    pred,
		entries: entries,
		k:       k,
		t:       t,
		rng:     cfg.rng,
		logger:  cfg.logger,
	}
	r.bmssp(l0, key.Sentinel, []int{source})

	return &Result{
		Dist:              dist,
		Pred:              pred,
		Iterations:        r.iterations,
		RelaxAttempts:     r.relaxAttempts,
		RelaxImprovements: r.relaxImprovements,
	}, nil
}

// deriveParameters computes k, t, l0 from N (spec.md §3). k and t are
// clamped to a minimum of 1 since they appear as divisors and recursion-
// depth scalers; l0 is left at whatever the formula yields (0 for N=1,
// matching the base case running directly at the top level).
func deriveParameters(n int) (k, t, l0 int) {
	logN := math.Log2(float64(n))
	k = int(math.Floor(math.Cbrt(logN)))
	if k < 1 {
		k = 1
	}
	t = int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 1 {
		t = 1
	}
	l0 = int(math.Ceil(logN / float64(t)))
	return k, t, l0
}

// runner holds the mutable state shared across every recursive bmssp
// frame of a single Run (spec.md §5 "A run is one synchronous
// computation owning exclusive access to the distance table,
// predecessor table, and every entry").
type runner struct {
	g       Graph
	dist    []float64
	pred    []int
	entries []*block.Entry

	k, t int
	rng  *rand.Rand

	logger *log.Logger

	iterations        int
	relaxAttempts     int
	relaxImprovements int
}

// kappa is κ(v) = (dist[v], pred[v], v), read fresh from the shared
// tables every time (spec.md §3).
func (r *runner) kappa(v int) key.Key {
	return key.Of(r.dist[v], r.pred[v], v)
}

// bmssp is the recursive driver of spec.md §4.6, with precondition
// |s| ≤ 2^l · t. Returns the new boundary B' ≤ b and the set U of
// vertices finalised below B'.
func (r *runner) bmssp(l int, b key.Key, s []int) (key.Key, []int) {
	r.iterations++
	if l == 0 {
		return r.baseCase(s[0], b)
	}

	p, w := pivot.FindPivots(r.g, r.dist, r.pred, b, s, r.k)

	m := 1 << uint((l-1)*r.t)
	frameRNG := median.DeriveRNG(r.rng, uint64(l))
	d := bbll.New(m, b, r.entries, frameRNG, r.logger)

	bPrimeAgg := b
	for _, x := range p {
		d.Insert(x, r.kappa(x))
		if kx := r.kappa(x); key.Less(kx, bPrimeAgg) {
			bPrimeAgg = kx
		}
	}

	var u []int
	uSeen := make(map[int]bool)
	threshold := r.k * (1 << uint(l*r.t))

	var prevSig iterSig
	havePrevSig := false

	for len(u) < threshold && !d.IsEmpty() {
		si, bi := d.Pull()
		if len(si) == 0 {
			break
		}

		bPrimeI, ui := r.bmssp(l-1, bi, si)
		if key.Less(bPrimeI, bPrimeAgg) {
			bPrimeAgg = bPrimeI
		}

		sig := makeIterSig(si, bi, bPrimeI, ui)
		if havePrevSig && sig.equal(prevSig) {
			r.logger.Printf("engine: fixed-point guard at l=%d: iteration repeated (Bi=%v, B'i=%v, |Si|=%d, |Ui|=%d); terminating loop", l, bi, bPrimeI, len(si), len(ui))
			break
		}
		prevSig, havePrevSig = sig, true

		for _, v := range ui {
			if !uSeen[v] {
				uSeen[v] = true
				u = append(u, v)
			}
		}

		var batch []bbll.Item
		for _, uu := range ui {
			for _, e := range r.g.Neighbors(uu) {
				v := e.To
				r.relaxAttempts++
				candidate := key.Of(r.dist[uu]+e.Weight, uu, v)
				if !key.LessEq(candidate, r.kappa(v)) {
					continue
				}
				r.dist[v] = candidate.Dist
				r.pred[v] = uu
				r.relaxImprovements++

				switch {
				case key.LessEq(bi, candidate) && key.Less(candidate, b):
					d.Insert(v, candidate)
				case key.LessEq(bPrimeI, candidate) && key.Less(candidate, bi):
					batch = append(batch, bbll.Item{Vertex: v, Key: candidate})
				}
			}
		}

		for _, x := range si {
			kx := r.kappa(x)
			if key.LessEq(bPrimeI, kx) && key.Less(kx, bi) {
				batch = append(batch, bbll.Item{Vertex: x, Key: kx})
			}
		}
		d.BatchPrepend(batch)
	}

	bPrime := key.Min(bPrimeAgg, b)
	for _, x := range w {
		if kx := r.kappa(x); key.Less(kx, bPrime) && !uSeen[x] {
			uSeen[x] = true
			u = append(u, x)
		}
	}

	return bPrime, u
}

// iterSig captures one loop iteration's (Si, Bi, B'i, Ui) tuple so
// consecutive iterations can be compared for the fixed-point guard
// (spec.md §4.6 step 7d): two iterations producing the identical tuple
// signal pathological non-progress, and the loop terminates rather than
// spin.
type iterSig struct {
	bi, bPrimeI key.Key
	si, ui      []int
}

func makeIterSig(si []int, bi key.Key, bPrimeI key.Key, ui []int) iterSig {
	return iterSig{
		bi:      bi,
		bPrimeI: bPrimeI,
		si:      append([]int(nil), si...),
		ui:      append([]int(nil), ui...),
	}
}

func (a iterSig) equal(b iterSig) bool {
	if a.bi != b.bi || a.bPrimeI != b.bPrimeI {
		return false
	}
	return intsEqual(a.si, b.si) && intsEqual(a.ui, b.ui)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
