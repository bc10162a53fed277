package maze

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"slices"
	"strings"
	"time"
)

// NoiseBias controls how much secondary corridor is added around the solution path.
type NoiseBias string

const (
	NoiseWalls NoiseBias = "walls" // sparser secondary corridors
	NoisePaths NoiseBias = "paths" // denser secondary corridors
	NoiseNone  NoiseBias = "none"  // solution path only
)

const (
	minDimension = 3
	maxDimension = 512

	maxAttempts = 8
	seedLength  = 15

	preferHorizontalProb = 0.6
	edgeFlipProb         = 0.6
	detourProb           = 0.01
	branchStopProb       = 0.05
	branchDownProb       = 0.45
	noiseOpenRange       = 14
	noiseDownProb        = 0.005
	noiseNoExitProb      = 0.001
)

const seedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// carveOrder is the order open directions are listed in; it fixes which square
// a given random draw selects.
var carveOrder = [4]Direction{North, South, East, West}

// ParseNoiseBias accepts "walls", "paths" or "none"; an empty string means "paths".
func ParseNoiseBias(s string) (NoiseBias, error) {
	switch b := NoiseBias(strings.ToLower(strings.TrimSpace(s))); b {
	case NoiseWalls, NoisePaths, NoiseNone:
		return b, nil
	case "":
		return NoisePaths, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNoiseBias, s)
}

// offset shifts the branch probabilities; negative values draw fewer paths.
func (b NoiseBias) offset() float64 {
	switch b {
	case NoiseWalls:
		return -0.09
	case NoisePaths:
		return 0.25
	}
	return 0
}

// Generator carves raw grids from its own seeded random source.
type Generator struct {
	seed string
	rng  *rand.Rand
	grid *Grid
}

// NewGenerator returns a generator for seed. An empty seed is replaced by a
// random one, available through Seed.
func NewGenerator(seed string) *Generator {
	if seed == "" {
		seed = randomSeed()
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seedValue(seed))),
	}
}

// Seed returns the seed that reproduces this generator's grids.
func (gen *Generator) Seed() string {
	return gen.seed
}

// Generate builds a width x height grid with a single Start on row 0, a single
// End on the last row and a carved path between them.
func (gen *Generator) Generate(width, height int, bias NoiseBias) (*Grid, error) {
	if min(width, height) < minDimension || max(width, height) > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	bias, err := ParseNoiseBias(string(bias))
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		gen.grid = newGrid(width, height)
		gen.grid.Seed = gen.seed

		if !gen.carveSolution() {
			continue
		}
		if bias != NoiseNone {
			gen.expandRows(bias.offset())
		}
		if !gen.grid.Reachable() {
			continue
		}

		grid := gen.grid
		gen.grid = nil
		return grid, nil
	}

	gen.grid = nil
	return nil, fmt.Errorf("%w: seed %q after %d attempts", ErrGenerationFailed, gen.seed, maxAttempts)
}

// carveSolution walks from a random Start in row 0 down to the second-to-last
// row, never moving up. It returns false if the walk gets stuck.
func (gen *Generator) carveSolution() bool {
	g := gen.grid
	start := CellPosition{X: 1 + gen.rng.Intn(g.Width-2), Y: 0}
	g.set(start, Start)
	g.Solution = []CellPosition{start}

	current := start.Add(South.Delta())
	gen.carve(current)

	prefer, other := East, West
	if gen.rng.Float64() < 0.5 {
		prefer, other = West, East
	}

	for current.Y != g.Height-2 {
		directions := slices.DeleteFunc(gen.openDirections(current), func(d Direction) bool {
			return d == North
		})
		if len(directions) == 0 {
			return false
		}

		next := directions[gen.rng.Intn(len(directions))]
		if slices.Contains(directions, prefer) && gen.rng.Float64() < preferHorizontalProb {
			next = prefer
		} else if gen.rng.Float64() < detourProb {
			current = gen.branch(current, prefer, false, 0, true)
			if gen.rng.Float64() < 0.5 {
				prefer, other = other, prefer
			}
			continue
		}

		nextPos := current.Add(next.Delta())
		gen.carve(nextPos)

		if gen.nextToEdge(current) && gen.rng.Float64() < edgeFlipProb {
			prefer, other = other, prefer
		}
		current = nextPos
	}

	end := CellPosition{X: current.X, Y: g.Height - 1}
	g.set(end, End)
	g.Solution = append(g.Solution, end)
	return true
}

// branch extends a corridor from pos towards direction, sometimes bending
// down, until it hits a non-wall square or the border, or stops at random
// (unless noExit). It returns the last square reached.
func (gen *Generator) branch(pos CellPosition, direction Direction, noExit bool, noiseOffset float64, onSolution bool) CellPosition {
	for {
		r := gen.rng.Float64() + noiseOffset
		if r < branchStopProb && !noExit {
			return pos
		}

		if !slices.Contains(gen.openDirections(pos), direction) {
			return pos
		}

		step := direction
		if branchStopProb < r && r < branchDownProb+noiseOffset {
			step = South
		}

		next := pos.Add(step.Delta())
		if !gen.canCarve(next) {
			return pos
		}

		if onSolution {
			gen.carve(next)
		} else {
			gen.grid.set(next, Path)
		}
		pos = next
	}
}

// expandRows adds noise corridors on rows not on a multiple-of-3 boundary.
func (gen *Generator) expandRows(noiseOffset float64) {
	g := gen.grid
	for y := 1; y < g.Height-1; y++ {
		if y%3 == 0 {
			continue
		}

		for x := 1; x < g.Width-1; x++ {
			pos := CellPosition{X: x, Y: y}
			roll := gen.rng.Intn(noiseOpenRange)
			if g.get(pos) != Wall {
				continue
			}

			if roll < 1 && gen.touchesPath(pos) {
				g.set(pos, Path)
				continue
			}
			if roll != 2 && roll != 3 {
				continue
			}

			direction := East
			if gen.rng.Float64() < noiseDownProb {
				direction = South
			} else if roll == 2 {
				direction = West
			}
			gen.branch(pos, direction, gen.rng.Float64() < noiseNoExitProb, noiseOffset, false)
		}
	}
}

// openDirections lists the directions from pos whose neighbour is an interior wall square.
func (gen *Generator) openDirections(pos CellPosition) []Direction {
	open := make([]Direction, 0, len(carveOrder))
	for _, d := range carveOrder {
		if gen.canCarve(pos.Add(d.Delta())) {
			open = append(open, d)
		}
	}
	return open
}

// canCarve reports whether p is an interior square still holding a wall.
func (gen *Generator) canCarve(p CellPosition) bool {
	g := gen.grid
	return g.InBound(p.X, p.Y) && !g.isEdge(p) && g.get(p) == Wall
}

// touchesPath reports whether an interior neighbour of pos is a Path square.
func (gen *Generator) touchesPath(pos CellPosition) bool {
	g := gen.grid
	for _, d := range carveOrder {
		n := pos.Add(d.Delta())
		if g.InBound(n.X, n.Y) && !g.isEdge(n) && g.get(n) == Path {
			return true
		}
	}
	return false
}

func (gen *Generator) nextToEdge(p CellPosition) bool {
	g := gen.grid
	return p.Y == 1 || p.Y == g.Height-2 || p.X == 1 || p.X == g.Width-2
}

func (gen *Generator) carve(p CellPosition) {
	gen.grid.set(p, Path)
	gen.grid.Solution = append(gen.grid.Solution, p)
}

// seedValue hashes a string seed into a rand.Source seed.
func seedValue(seed string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return int64(h.Sum64())
}

func randomSeed() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, seedLength)
	for i := range b {
		b[i] = seedAlphabet[rng.Intn(len(seedAlphabet))]
	}
	return string(b)
}
