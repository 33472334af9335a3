package galaxy

// Particle is the per-cell payload for the galaxy example: state 0 means
// "empty", any other state means "occupied by a body" of the given mass
// drifting at velocity.
type Particle struct {
	state    int
	mass     float64
	velocity [3]float64
}

// NewBody returns an occupied Particle of the given mass at rest.
func NewBody(mass float64) Particle {
	return Particle{state: 1, mass: mass}
}

// State satisfies grid.Cell.
func (p Particle) State() int { return p.state }

// WithState satisfies grid.Cell: only the state field changes, mass and
// velocity carry over unchanged.
func (p Particle) WithState(state int) Particle {
	p.state = state
	return p
}

// Mass returns the body's mass (0 for an empty cell).
func (p Particle) Mass() float64 { return p.mass }

// Velocity returns the body's per-axis drift velocity.
func (p Particle) Velocity() [3]float64 { return p.velocity }
