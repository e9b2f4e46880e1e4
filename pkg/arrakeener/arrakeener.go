// Package arrakeener models a single Arrakis character: identity fields plus
// Energy, Solaris and Spice counters that change only through validated,
// all-or-nothing operations.
//
// A *Arrakeener is a reference. Copying the pointer creates an alias that
// observes every mutation; Clone creates an independent entity.
package arrakeener

import "sync"

// Initial counter ranges (inclusive)
const (
	MinInitialEnergy  int64 = 1
	MaxInitialEnergy  int64 = 100
	MinInitialSolaris int64 = 200000
	MaxInitialSolaris int64 = 400000
)

// Arrakeener is one character. All methods are safe for concurrent use as
// long as its Rand is, which holds for the default source and NewSeededRand.
type Arrakeener struct {
	mu  sync.Mutex
	rng Rand

	firstName   string
	lastName    string
	affiliation string
	occupation  string

	energy  int64
	solaris int64
	spice   int64
}

// Option configures a new Arrakeener
type Option func(*Arrakeener)

// WithRand sets the random source used for the initial roll and for every
// operation on the entity and its clones
func WithRand(r Rand) Option {
	return func(a *Arrakeener) {
		if r != nil {
			a.rng = r
		}
	}
}

// New creates an Arrakeener with randomly rolled Energy and Solaris and no spice
func New(firstName, lastName, affiliation, occupation string, opts ...Option) *Arrakeener {
	a := &Arrakeener{
		rng:         globalRand{},
		firstName:   firstName,
		lastName:    lastName,
		affiliation: affiliation,
		occupation:  occupation,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.energy = randRange(a.rng, MinInitialEnergy, MaxInitialEnergy)
	a.solaris = randRange(a.rng, MinInitialSolaris, MaxInitialSolaris)
	a.spice = 0

	return a
}

// Clone returns an independent copy of the current state
func (a *Arrakeener) Clone() *Arrakeener {
	a.mu.Lock()
	defer a.mu.Unlock()

	return &Arrakeener{
		rng:         a.rng,
		firstName:   a.firstName,
		lastName:    a.lastName,
		affiliation: a.affiliation,
		occupation:  a.occupation,
		energy:      a.energy,
		solaris:     a.solaris,
		spice:       a.spice,
	}
}

func (a *Arrakeener) FirstName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firstName
}

func (a *Arrakeener) SetFirstName(v string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.firstName = v
}

func (a *Arrakeener) LastName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastName
}

func (a *Arrakeener) SetLastName(v string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastName = v
}

func (a *Arrakeener) Affiliation() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.affiliation
}

func (a *Arrakeener) SetAffiliation(v string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.affiliation = v
}

func (a *Arrakeener) Occupation() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.occupation
}

func (a *Arrakeener) SetOccupation(v string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.occupation = v
}

// Energy returns the current energy
func (a *Arrakeener) Energy() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.energy
}

// Solaris returns the current solaris balance
func (a *Arrakeener) Solaris() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.solaris
}

// Spice returns the current spice balance
func (a *Arrakeener) Spice() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.spice
}

// Snapshot returns a consistent copy of every field
func (a *Arrakeener) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Snapshot{
		FirstName:   a.firstName,
		LastName:    a.lastName,
		Affiliation: a.affiliation,
		Occupation:  a.occupation,
		Energy:      a.energy,
		Solaris:     a.solaris,
		Spice:       a.spice,
	}
}
