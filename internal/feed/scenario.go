package feed

import (
	"errors"
	"fmt"
	"os"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/geometry"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScenario = errors.New("feed: scenario has no airships")

type scenarioShip struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x_km"`
	Y       float64 `yaml:"y_km"`
	Heading float64 `yaml:"heading_deg"`
	Speed   float64 `yaml:"speed_kmh"`
	Width   float64 `yaml:"width_km"`
	Length  float64 `yaml:"length_km"`
}

type scenarioFile struct {
	Airships []scenarioShip `yaml:"airships"`
}

// LoadScenario reads a static list of airships from a YAML file:
//
//	airships:
//	  - id: LZ-127
//	    x_km: 1.5
//	    y_km: -2
//	    heading_deg: 90
//	    speed_kmh: 60
//	    width_km: 0.03
//	    length_km: 0.24
func LoadScenario(path string) ([]airship.Airship, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("feed: read scenario %s: %w", path, err)
	}
	ships, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("feed: scenario %s: %w", path, err)
	}
	return ships, nil
}

// ParseScenario decodes and validates scenario YAML. Duplicate ids are
// rejected the same way the airship collection rejects them.
func ParseScenario(data []byte) ([]airship.Airship, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(f.Airships) == 0 {
		return nil, ErrEmptyScenario
	}

	ships := make([]airship.Airship, len(f.Airships))
	for i, s := range f.Airships {
		ships[i] = airship.Airship{
			ID:       s.ID,
			Position: geometry.Cartesian{X: s.X, Y: s.Y},
			Heading:  geometry.Degrees(s.Heading),
			Speed:    s.Speed,
			Width:    s.Width,
			Length:   s.Length,
		}
	}
	if _, err := airship.NewAirships(ships...); err != nil {
		return nil, err
	}
	return ships, nil
}
