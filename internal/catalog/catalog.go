package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leddie24/neetcode-tracker/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrUnknownProblem = errors.New("catalog: unknown problem")

//go:embed problems.json
var defaultProblems []byte

// Catalog is the ordered, read-only problem list. Notes are the one field that
// may change after loading.
type Catalog struct {
	problems []models.Problem
	index    map[int]int
}

// Load reads the catalog at path, or the built-in list when path is empty.
// Files ending in .yaml or .yml are read as YAML, anything else as JSON.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultProblems)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return Parse(data)
}

// Parse decodes a JSON array of problems. IDs must be unique and difficulties valid.
func Parse(data []byte) (*Catalog, error) {
	var problems []models.Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(problems)
}

// ParseYAML decodes a YAML sequence of problems with the same field names as JSON.
func ParseYAML(data []byte) (*Catalog, error) {
	var problems []models.Problem
	if err := yaml.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(problems)
}

func New(problems []models.Problem) (*Catalog, error) {
	c := &Catalog{
		problems: make([]models.Problem, len(problems)),
		index:    make(map[int]int, len(problems)),
	}
	for i, p := range problems {
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate problem id %d", p.ID)
		}
		d, err := models.ParseDifficulty(string(p.Difficulty))
		if err != nil {
			return nil, fmt.Errorf("catalog: problem %d: %w", p.ID, err)
		}
		p.Difficulty = d
		c.problems[i] = p
		c.index[p.ID] = i
	}
	return c, nil
}

// Problems returns a copy in catalog order.
func (c *Catalog) Problems() []models.Problem {
	return append([]models.Problem(nil), c.problems...)
}

func (c *Catalog) Find(id int) (models.Problem, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Problem{}, fmt.Errorf("%w: %d", ErrUnknownProblem, id)
	}
	return c.problems[i], nil
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.problems {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// SetNotes overwrites one problem's notes. It reports false for an unknown id.
func (c *Catalog) SetNotes(id int, notes string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.problems[i].Notes = notes
	return true
}

// ApplyNotes overwrites notes by id, skipping unknown ids and empty text,
// and returns how many problems changed.
func (c *Catalog) ApplyNotes(notes map[int]string) int {
	n := 0
	for id, text := range notes {
		if text == "" {
			continue
		}
		if c.SetNotes(id, text) {
			n++
		}
	}
	return n
}

// Notes returns every non-empty note keyed by problem id.
func (c *Catalog) Notes() map[int]string {
	out := map[int]string{}
	for _, p := range c.problems {
		if p.Notes != "" {
			out[p.ID] = p.Notes
		}
	}
	return out
}

// Filter keeps problems matching category and difficulty; "" or "All" matches everything.
func (c *Catalog) Filter(category string, difficulty models.Difficulty) []models.Problem {
	var out []models.Problem
	for _, p := range c.problems {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if difficulty != "" && p.Difficulty != difficulty {
			continue
		}
		out = append(out, p)
	}
	return out
}
