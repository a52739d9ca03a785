package profile

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var builtinYAML []byte

type catalogFile struct {
	Organisms   []*Organism   `yaml:"organisms"`
	Experiments []*Experiment `yaml:"experiments"`
}

// Catalog is an immutable set of organism and experiment definitions with
// resolution indexes. Build one at startup and pass it around explicitly.
type Catalog struct {
	organisms   map[string]*Organism
	experiments map[string]*Experiment

	// normalized code or alias -> canonical code, scanned in sorted order
	// so fuzzy resolution is deterministic.
	organismIndex   map[string]string
	experimentIndex map[string]string
	organismKeys    []string
	experimentKeys  []string
}

// NewCatalog builds a catalog from explicit definitions. Definitions with a
// duplicate canonical code are rejected.
func NewCatalog(organisms []*Organism, experiments []*Experiment) (*Catalog, error) {
	cat := &Catalog{
		organisms:       make(map[string]*Organism, len(organisms)),
		experiments:     make(map[string]*Experiment, len(experiments)),
		organismIndex:   make(map[string]string),
		experimentIndex: make(map[string]string),
	}

	for _, org := range organisms {
		code := Normalize(org.Code)
		if _, ok := cat.organisms[code]; ok {
			return nil, fmt.Errorf("duplicate organism code %q", org.Code)
		}

		cat.organisms[code] = org
		cat.organismIndex[code] = code

		for _, alias := range org.Aliases {
			cat.organismIndex[Normalize(alias)] = code
		}
	}

	for _, exp := range experiments {
		code := Normalize(exp.Code)
		if _, ok := cat.experiments[code]; ok {
			return nil, fmt.Errorf("duplicate experiment code %q", exp.Code)
		}

		cat.experiments[code] = exp
		cat.experimentIndex[code] = code

		for _, alias := range exp.Aliases {
			cat.experimentIndex[Normalize(alias)] = code
		}
	}

	cat.organismKeys = sortedKeys(cat.organismIndex)
	cat.experimentKeys = sortedKeys(cat.experimentIndex)

	return cat, nil
}

//nolint:gochecknoglobals // built once, immutable afterwards
var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the process-wide catalog parsed from the embedded
// definitions. The catalog is constructed once and never mutated.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		var file catalogFile
		if err := yaml.Unmarshal(builtinYAML, &file); err != nil {
			panic(fmt.Sprintf("embedded profile catalog is invalid: %v", err))
		}

		cat, err := NewCatalog(file.Organisms, file.Experiments)
		if err != nil {
			panic(fmt.Sprintf("embedded profile catalog is invalid: %v", err))
		}

		builtinCatalog = cat
	})

	return builtinCatalog
}

// Organisms returns all organism definitions sorted by canonical code.
func (c *Catalog) Organisms() []*Organism {
	codes := sortedKeys(c.organisms)

	out := make([]*Organism, 0, len(codes))
	for _, code := range codes {
		out = append(out, c.organisms[code])
	}

	return out
}

// Experiments returns all experiment definitions sorted by canonical code.
func (c *Catalog) Experiments() []*Experiment {
	codes := sortedKeys(c.experiments)

	out := make([]*Experiment, 0, len(codes))
	for _, code := range codes {
		out = append(out, c.experiments[code])
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
