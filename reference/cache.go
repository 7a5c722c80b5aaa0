package reference

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"soullink-tracker/models"
)

// The three reference files living in the data directory. Anything
// else is rejected by name.
const (
	RoutesFile       = "routes.json"
	PokemonNamesFile = "pokemon_names.json"
	LevelCapsFile    = "level_caps.json"
)

var (
	ErrUnknownFile    = errors.New("unknown reference file")
	ErrInvalidContent = errors.New("invalid content")
)

// namedEntry is one element of routes.json / pokemon_names.json.
type namedEntry struct {
	Name string `json:"name"`
}

// fileLevelCap mirrors models.LevelCapEntry but keeps OrderNumber as a
// pointer so entries missing it can be skipped, like the original data
// loader did.
type fileLevelCap struct {
	Name          string `json:"name"`
	OrderNumber   *int   `json:"order_number"`
	MaxLevel      int    `json:"max_level"`
	AdjustedLevel int    `json:"adjusted_level"`
}

type snapshot struct {
	routeNames   []string
	pokemonNames []string
	levelCaps    []models.LevelCapEntry
}

// Cache holds the reference lists used to populate client-side
// pickers. It is injected into whatever needs it and reloaded as one
// unit: readers never see a half-replaced pair of lists. The lists are
// never enforced as constraints on player or route names.
type Cache struct {
	dir func(name string) string

	mu   sync.RWMutex
	snap snapshot
}

// NewCache builds an empty cache. pathFor maps a reference file name
// to its on-disk location (normally config.Config.ReferencePath).
func NewCache(pathFor func(name string) string) *Cache {
	return &Cache{dir: pathFor}
}

// Reload re-reads all three reference files and swaps the cached
// lists atomically. A missing or malformed file is logged and the
// previously cached list for it is kept; Reload itself never fails.
func (c *Cache) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.snap

	if names, err := c.loadNames(RoutesFile); err != nil {
		log.Printf("reference: keeping previous route names: %v", err)
	} else {
		next.routeNames = names
	}

	if names, err := c.loadNames(PokemonNamesFile); err != nil {
		log.Printf("reference: keeping previous pokemon names: %v", err)
	} else {
		next.pokemonNames = names
	}

	if caps, err := c.loadLevelCaps(); err != nil {
		log.Printf("reference: keeping previous level caps: %v", err)
	} else {
		next.levelCaps = caps
	}

	c.snap = next
}

func (c *Cache) RouteNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.snap.routeNames...)
}

func (c *Cache) PokemonNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.snap.pokemonNames...)
}

func (c *Cache) LevelCaps() []models.LevelCapEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.LevelCapEntry(nil), c.snap.levelCaps...)
}

func (c *Cache) loadNames(name string) ([]string, error) {
	raw, err := c.readOrCreate(name)
	if err != nil {
		return nil, err
	}
	var entries []namedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

func (c *Cache) loadLevelCaps() ([]models.LevelCapEntry, error) {
	raw, err := c.readOrCreate(LevelCapsFile)
	if err != nil {
		return nil, err
	}
	var entries []fileLevelCap
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", LevelCapsFile, err)
	}
	caps := make([]models.LevelCapEntry, 0, len(entries))
	for _, e := range entries {
		if e.OrderNumber == nil {
			log.Printf("reference: level cap entry %q has no order_number, skipping", e.Name)
			continue
		}
		caps = append(caps, models.LevelCapEntry{
			Name:          e.Name,
			OrderNumber:   *e.OrderNumber,
			MaxLevel:      e.MaxLevel,
			AdjustedLevel: e.AdjustedLevel,
		})
	}
	return caps, nil
}

// readOrCreate reads a reference file, creating it as an empty JSON
// array when absent so a fresh deployment starts with valid files.
func (c *Cache) readOrCreate(name string) ([]byte, error) {
	path := c.dir(name)
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("reference: %s not found, creating empty file", name)
		if werr := os.WriteFile(path, []byte("[]"), 0o644); werr != nil {
			return nil, fmt.Errorf("create %s: %w", name, werr)
		}
		return []byte("[]"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(raw) == 0 {
		log.Printf("reference: %s is empty, treating as empty list", name)
		return []byte("[]"), nil
	}
	return raw, nil
}
