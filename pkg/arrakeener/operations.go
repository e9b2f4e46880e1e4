package arrakeener

// Randomized deltas (inclusive ranges)
const (
	MinDefaultMine int64 = 10
	MaxDefaultMine int64 = 50

	DefaultEat  int64 = 1
	DefaultSell int64 = 1

	MaxMiningEnergyCost     int64 = 10
	MinMiningSolarisPerUnit int64 = 100
	MaxMiningSolarisPerUnit int64 = 2000

	MinEnergyPerUnit int64 = 1
	MaxEnergyPerUnit int64 = 100

	MinSolarisPerUnit int64 = 200000
	MaxSolarisPerUnit int64 = 700000
)

// MineSpice harvests amount units of spice, or a random default amount when
// none is given. Mining costs a random amount of energy (at most 10 and never
// more than is held) and a random solaris price per unit. It returns the
// spice added.
func (a *Arrakeener) MineSpice(amount ...int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	units, err := a.amount("MineSpice", amount, -1)
	if err != nil {
		return 0, err
	}
	if units < 1 {
		return 0, &InvalidArgumentError{Arg: "spice amount", Value: units, Reason: "must be positive"}
	}

	newSpice, ok := safeAdd(a.spice, units)
	if !ok {
		return 0, &OverflowError{Op: "MineSpice"}
	}
	solarisCost, ok := safeMultiply(randRange(a.rng, MinMiningSolarisPerUnit, MaxMiningSolarisPerUnit), units)
	if !ok {
		return 0, &OverflowError{Op: "MineSpice"}
	}

	if a.energy < 1 {
		return 0, &InsufficientResourceError{Resource: ResourceEnergy, Have: a.energy, Need: 1}
	}
	energyCost := randRange(a.rng, 1, min(MaxMiningEnergyCost, a.energy))
	if a.solaris < solarisCost {
		return 0, &InsufficientResourceError{Resource: ResourceSolaris, Have: a.solaris, Need: solarisCost}
	}

	a.energy -= energyCost
	a.solaris -= solarisCost
	a.spice = newSpice

	return units, nil
}

// EatSpice consumes amount units of spice (default 1) and returns the energy
// gained, a random 1 to 100 per unit
func (a *Arrakeener) EatSpice(amount ...int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	units, err := a.spend("EatSpice", amount, DefaultEat)
	if err != nil {
		return 0, err
	}

	gain, ok := safeMultiply(randRange(a.rng, MinEnergyPerUnit, MaxEnergyPerUnit), units)
	if !ok {
		return 0, &OverflowError{Op: "EatSpice"}
	}
	newEnergy, ok := safeAdd(a.energy, gain)
	if !ok {
		return 0, &OverflowError{Op: "EatSpice"}
	}

	a.spice -= units
	a.energy = newEnergy

	return gain, nil
}

// SellSpice sells amount units of spice (default 1) and returns the solaris
// earned, a random 200000 to 700000 per unit
func (a *Arrakeener) SellSpice(amount ...int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	units, err := a.spend("SellSpice", amount, DefaultSell)
	if err != nil {
		return 0, err
	}

	gain, ok := safeMultiply(randRange(a.rng, MinSolarisPerUnit, MaxSolarisPerUnit), units)
	if !ok {
		return 0, &OverflowError{Op: "SellSpice"}
	}
	newSolaris, ok := safeAdd(a.solaris, gain)
	if !ok {
		return 0, &OverflowError{Op: "SellSpice"}
	}

	a.spice -= units
	a.solaris = newSolaris

	return gain, nil
}

// spend resolves and validates the units taken out of the spice balance.
// An empty balance always reports insufficient spice, whatever was asked for.
func (a *Arrakeener) spend(op string, amount []int64, def int64) (int64, error) {
	units, err := a.amount(op, amount, def)
	if err != nil {
		return 0, err
	}
	if a.spice == 0 || a.spice < units {
		return 0, &InsufficientResourceError{Resource: ResourceSpice, Have: a.spice, Need: max(units, 1)}
	}
	if units < 1 {
		return 0, &InvalidArgumentError{Arg: "spice amount", Value: units, Reason: "must be positive"}
	}
	return units, nil
}

// amount picks the single optional argument, or def. A negative def means a
// random mining yield. Callers hold a.mu.
func (a *Arrakeener) amount(op string, amount []int64, def int64) (int64, error) {
	switch len(amount) {
	case 0:
		if def < 0 {
			return randRange(a.rng, MinDefaultMine, MaxDefaultMine), nil
		}
		return def, nil
	case 1:
		return amount[0], nil
	default:
		return 0, &InvalidArgumentError{Arg: op + " argument count", Value: int64(len(amount)), Reason: "at most one amount"}
	}
}
