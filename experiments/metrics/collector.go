package metrics

import "time"

// SearchMetric describes one move decision: how deep the alpha-beta search
// went and how many nodes it visited, or how many playouts the rollout
// evaluator completed.
type SearchMetric struct {
	Depth        int
	Nodes        int
	Playouts     int
	FullPlayouts int
	Duration     time.Duration
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig identifies one agent configuration used in an experiment.
type AgentConfig struct {
	ID       int
	Kind     string // "alphabeta" or "rollout"
	Depth    int
	Playouts int
	Seed     uint64
}

type Collector interface {
	Start(depth, playouts int)
	AddNode()
	AddFullPlayout()
	Complete() SearchMetric
}

// collector accumulates counters for one move decision. The harness is
// strictly sequential, so plain ints suffice.
type collector struct {
	depth     int
	playouts  int
	startTime time.Time
	nodes     int
	full      int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth, playouts int) {
	c.startTime = time.Now()
	c.depth = depth
	c.playouts = playouts
	c.nodes = 0
	c.full = 0
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddFullPlayout() {
	c.full++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:        c.depth,
		Nodes:        c.nodes,
		Playouts:     c.playouts,
		FullPlayouts: c.full,
		Duration:     time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(depth, playouts int) {}
func (d *dummyCollector) AddNode()                  {}
func (d *dummyCollector) AddFullPlayout()           {}
func (d *dummyCollector) Complete() SearchMetric    { return SearchMetric{} }
