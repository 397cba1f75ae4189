package datastructure

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kashi-pulse/kashipath/pkg"
)

var (
	ErrDuplicateHub = errors.New("hub already registered")
	ErrUnknownHub   = errors.New("unknown hub")
)

type Hub struct {
	id       string
	category pkg.HubCategory
}

func NewHub(id string, category pkg.HubCategory) *Hub {
	return &Hub{
		id:       id,
		category: category,
	}
}

func (h *Hub) GetID() string {
	return h.id
}

func (h *Hub) GetCategory() pkg.HubCategory {
	return h.category
}

// Connection is a directed, mode-tagged edge between two hubs. multiple
// connections may share the same (source, destination) pair as long as each is
// costed independently; identity is (source, destination, mode) and
// duplicate-mode parallel corridors are legal.
type Connection struct {
	source      string
	destination string
	mode        pkg.Mode
	baseTime    float64 // minutes, immutable after creation
	weight      float64
	status      string
}

func NewConnection(source, destination string, mode pkg.Mode, baseTime float64) *Connection {
	return &Connection{
		source:      source,
		destination: destination,
		mode:        mode,
		baseTime:    baseTime,
		weight:      baseTime,
		status:      pkg.STATUS_CLEAR,
	}
}

func (c *Connection) GetSource() string {
	return c.source
}

func (c *Connection) GetDestination() string {
	return c.destination
}

func (c *Connection) GetMode() pkg.Mode {
	return c.mode
}

func (c *Connection) GetBaseTime() float64 {
	return c.baseTime
}

func (c *Connection) GetWeight() float64 {
	return c.weight
}

func (c *Connection) GetStatus() string {
	return c.status
}

// TransitGraph is the mutable multigraph of urban hubs. topology is append-only
// after seeding: only connection weight/status change afterwards, through
// SetWeightAndStatus. guarded by a single-writer/multi-reader lock so a
// governance recompute pass never interleaves with a solve.
type TransitGraph struct {
	mu             sync.RWMutex
	hubs           map[string]*Hub
	hubOrder       []string // insertion order, keeps AllConnections stable
	outConnections map[string][]*Connection
	numConnections int
}

func NewTransitGraph() *TransitGraph {
	return &TransitGraph{
		hubs:           make(map[string]*Hub),
		hubOrder:       make([]string, 0),
		outConnections: make(map[string][]*Connection),
	}
}

func (g *TransitGraph) AddHub(id string, category pkg.HubCategory) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.hubs[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHub, id)
	}
	g.hubs[id] = NewHub(id, category)
	g.hubOrder = append(g.hubOrder, id)
	return nil
}

func (g *TransitGraph) AddConnection(source, destination string, mode pkg.Mode, baseTime float64) (*Connection, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.hubs[source]; !ok {
		return nil, fmt.Errorf("%w: source %s", ErrUnknownHub, source)
	}
	if _, ok := g.hubs[destination]; !ok {
		return nil, fmt.Errorf("%w: destination %s", ErrUnknownHub, destination)
	}

	conn := NewConnection(source, destination, mode, baseTime)
	g.outConnections[source] = append(g.outConnections[source], conn)
	g.numConnections++
	return conn, nil
}

func (g *TransitGraph) HasHub(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.hubs[id]
	return ok
}

func (g *TransitGraph) GetHub(id string) (*Hub, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hub, ok := g.hubs[id]
	return hub, ok
}

// Hubs returns every hub in insertion order.
func (g *TransitGraph) Hubs() []*Hub {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hubs := make([]*Hub, 0, len(g.hubOrder))
	for _, id := range g.hubOrder {
		hubs = append(hubs, g.hubs[id])
	}
	return hubs
}

// ConnectionsFrom returns the outgoing connections of a hub in insertion order.
func (g *TransitGraph) ConnectionsFrom(id string) []*Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.outConnections[id]
}

// AllConnections returns every connection grouped by source hub in hub
// insertion order, so repeated full passes visit the same stable sequence.
func (g *TransitGraph) AllConnections() []*Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	conns := make([]*Connection, 0, g.numConnections)
	for _, id := range g.hubOrder {
		conns = append(conns, g.outConnections[id]...)
	}
	return conns
}

// SetWeightAndStatus overwrites the mutable attributes of a connection.
// existence is the caller's concern, there is no error path.
func (g *TransitGraph) SetWeightAndStatus(conn *Connection, weight float64, status string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	conn.weight = weight
	conn.status = status
}

func (g *TransitGraph) NumberOfHubs() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.hubs)
}

func (g *TransitGraph) NumberOfConnections() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numConnections
}
