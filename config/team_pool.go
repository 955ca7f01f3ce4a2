package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Dosada05/bracket-editor/models"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTeamPool = errors.New("invalid team pool file")

type teamPoolFile struct {
	Teams []models.Team `yaml:"teams"`
}

// LoadTeamPool reads a YAML roster of the form:
//
//	teams:
//	  - id: t1
//	    name: Crimson Falcons
//	    seed: 1
func LoadTeamPool(path string) ([]models.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read team pool %s: %w", path, err)
	}
	return ParseTeamPool(data)
}

func ParseTeamPool(data []byte) ([]models.Team, error) {
	var file teamPoolFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTeamPool, err)
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("%w: no teams listed", ErrInvalidTeamPool)
	}

	seen := make(map[string]struct{}, len(file.Teams))
	for i := range file.Teams {
		t := &file.Teams[i]
		t.Name = strings.TrimSpace(t.Name)
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("%w: team %d needs an id and a name", ErrInvalidTeamPool, i+1)
		}
		if t.IsBye() {
			return nil, fmt.Errorf("%w: team id %q is reserved", ErrInvalidTeamPool, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate team id %q", ErrInvalidTeamPool, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return file.Teams, nil
}
