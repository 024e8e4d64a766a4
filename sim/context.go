package sim

// EventKind classifies something that happened during a frame.
type EventKind int

const (
	EventJump EventKind = iota
	EventStomp
	EventGem
	EventExtraLife
	EventDied
	EventLevelComplete
	EventSporeFired
	EventSnowballThrown
	EventIceCracked
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventStomp:
		return "stomp"
	case EventGem:
		return "gem"
	case EventExtraLife:
		return "extra-life"
	case EventDied:
		return "died"
	case EventLevelComplete:
		return "level-complete"
	case EventSporeFired:
		return "spore-fired"
	case EventSnowballThrown:
		return "snowball-thrown"
	case EventIceCracked:
		return "ice-cracked"
	}
	return "unknown"
}

// Event carries the world position it happened at.
type Event struct {
	Kind EventKind
	X, Y int
}

// Context owns the counters shared by every update: score, lives and the
// frame clock. It is threaded through updates instead of living in globals.
type Context struct {
	score  int
	lives  int
	clock  int
	events []Event
}

// NewContext creates a context with the given lives and zero score.
func NewContext(lives int) *Context {
	return &Context{lives: lives}
}

func (c *Context) Score() int { return c.score }
func (c *Context) Lives() int { return c.lives }
func (c *Context) Clock() int { return c.clock }

// AddScore adds n points.
func (c *Context) AddScore(n int) {
	c.score += n
}

// SetScore overwrites the score, used when an attempt is rolled back.
func (c *Context) SetScore(n int) {
	c.score = n
}

// AddLives adds n lives.
func (c *Context) AddLives(n int) {
	c.lives += n
}

// SetLives overwrites the life count.
func (c *Context) SetLives(n int) {
	c.lives = n
}

// LoseLife removes one life and returns the remaining count.
func (c *Context) LoseLife() int {
	c.lives--
	return c.lives
}

// Tick advances the frame clock.
func (c *Context) Tick() {
	c.clock++
}

// Emit records an event for the presentation layer.
func (c *Context) Emit(kind EventKind, x, y int) {
	c.events = append(c.events, Event{Kind: kind, X: x, Y: y})
}

// Events returns the events recorded since the last DrainEvents.
func (c *Context) Events() []Event {
	return c.events
}

// DrainEvents returns the recorded events and clears the list.
func (c *Context) DrainEvents() []Event {
	ev := c.events
	c.events = nil
	return ev
}
