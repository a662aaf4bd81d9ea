package input

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// Preset names a family of sample arrays.
type Preset string

const (
	PresetRandom  Preset = "random"
	PresetSorted  Preset = "sorted"
	PresetReverse Preset = "reverse"
	PresetNearly  Preset = "nearly"
)

// Presets lists the presets in display order.
func Presets() []Preset {
	return []Preset{PresetRandom, PresetSorted, PresetReverse, PresetNearly}
}

const (
	DefaultSize = 15
	randomMin   = 10
	randomMax   = 99
	sortedStart = 10
	reverseMax  = 100
	presetStep  = 5
	nearlySwaps = 3
)

// Generator produces sample arrays from a seeded source, so a seed always
// yields the same arrays.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Random returns size values drawn uniformly from [min, max].
func (g *Generator) Random(size, min, max int) []int {
	if max < min {
		min, max = max, min
	}
	out := make([]int, size)
	for i := range out {
		out[i] = g.rng.Intn(max-min+1) + min
	}
	return out
}

// Sorted returns start, start+5, start+10, ...
func (g *Generator) Sorted(size, start int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = start + i*presetStep
	}
	return out
}

// Reverse returns max, max-5, max-10, ...
func (g *Generator) Reverse(size, max int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = max - i*presetStep
	}
	return out
}

// NearlySorted is Sorted with a few random pairs exchanged.
func (g *Generator) NearlySorted(size, swaps int) []int {
	out := g.Sorted(size, sortedStart)
	if size == 0 {
		return out
	}
	for range swaps {
		i, j := g.rng.Intn(size), g.rng.Intn(size)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Preset builds an array of the named family.
func (g *Generator) Preset(p Preset, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidInput, size)
	}

	switch Preset(strings.ToLower(string(p))) {
	case PresetRandom, "":
		return g.Random(size, randomMin, randomMax), nil
	case PresetSorted:
		return g.Sorted(size, sortedStart), nil
	case PresetReverse:
		return g.Reverse(size, reverseMax), nil
	case PresetNearly:
		return g.NearlySorted(size, nearlySwaps), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (valid: %v)", p, Presets())
	}
}

// IsPreset reports whether name is one of Presets.
func IsPreset(name string) bool {
	return slices.Contains(Presets(), Preset(strings.ToLower(name)))
}
