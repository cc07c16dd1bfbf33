package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// Load reads machine definitions from the given path. The path may be a
// single JSON file holding one machine, or a directory whose *.json files
// each hold one machine. Files load in lexical order so catalog listings
// are stable across restarts.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat machines path: %w", err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read machines directory: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
		sort.Strings(files)
	} else {
		files = []string{path}
	}

	machines := make([]*models.Machine, 0, len(files))
	for _, f := range files {
		m, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}

	return New(machines)
}

func loadFile(path string) (*models.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine file %s: %w", path, err)
	}

	// Machines and paylines are active unless the file says otherwise, so
	// the active flags are decoded through pointers before the plain model
	// is built.
	var raw struct {
		models.Machine
		Active   *bool `json:"active"`
		Paylines []struct {
			ID     int           `json:"id"`
			Cells  []models.Cell `json:"cells"`
			Active *bool         `json:"active"`
		} `json:"paylines"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse machine file %s: %w", path, err)
	}

	m := raw.Machine
	m.Active = raw.Active == nil || *raw.Active
	m.Paylines = make([]models.Payline, len(raw.Paylines))
	for i, line := range raw.Paylines {
		m.Paylines[i] = models.Payline{
			ID:     line.ID,
			Cells:  line.Cells,
			Active: line.Active == nil || *line.Active,
		}
	}

	normalize(&m)
	return &m, nil
}

// normalize fills in the derived and defaulted fields of a freshly parsed
// machine: wild flags derived from symbol names, unit multipliers, and
// payline ids and active flags for configs that omit them.
func normalize(m *models.Machine) {
	for i := range m.Symbols {
		s := &m.Symbols[i]
		if !s.Wild && s.IsWildNamed() {
			s.Wild = true
		}
		if s.Multiplier.IsZero() {
			s.Multiplier = decimal.NewFromInt(1)
		}
	}
	for i := range m.Paylines {
		if m.Paylines[i].ID == 0 {
			m.Paylines[i].ID = i + 1
		}
	}
}
