package sprig

import (
	"fmt"
	"math"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Scene debug flag so that node and
// action construction (which lack a Scene pointer) can check it cheaply. Only
// valid with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugStats holds per-tick action metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime     time.Duration
	nodesVisited int
	nodesActive  int
	actionsRun   int
}

// debugLog prints per-tick stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] step: %v | nodes: %d | active: %d | actions: %d\n",
		stats.stepTime, stats.nodesVisited, stats.nodesActive, stats.actionsRun)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sprig debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugCheckDuration warns about durations the engine will treat as instant.
// Never panics: construction happens on the per-frame path.
func debugCheckDuration(d float64) {
	if math.IsNaN(d) || d < 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: action duration %v runs as instant\n", d)
	}
}

// debugCheckCapabilities warns when a node lacks something the action needs.
// The action still runs; the missing parts are skipped every tick.
func debugCheckCapabilities(n *Node, a Action) {
	if a == nil {
		return
	}
	missing := a.Requires() &^ n.Capabilities()
	if missing != 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: node %q (%s) lacks %s; those effects are skipped\n",
			n.Name, n.Type, missing)
	}
}
