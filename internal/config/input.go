package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ley73/internal/domain"
)

//go:embed tables.yaml
var defaultTables []byte

// ProfileFile is the YAML layout of an input file: a single profile or a list of them
type ProfileFile struct {
	Profile  *RawProfile  `yaml:"profile"`
	Profiles []RawProfile `yaml:"profiles"`
}

// InputParser handles parsing of input configuration files
type InputParser struct {
	validator *Validator
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validator: NewValidator()}
}

// Validator exposes the profile validator so other boundaries (importer, CLI flags) share it
func (ip *InputParser) Validator() *Validator {
	return ip.validator
}

// LoadFromFile loads the contributor profiles from a YAML file
func (ip *InputParser) LoadFromFile(filename string) ([]domain.ContributorProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseProfiles(data)
}

// ParseProfiles decodes and builds every profile in a YAML document
func (ip *InputParser) ParseProfiles(data []byte) ([]domain.ContributorProfile, error) {
	var file ProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	raw := file.Profiles
	if file.Profile != nil {
		raw = append([]RawProfile{*file.Profile}, raw...)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no profiles found: expected a 'profile' or 'profiles' key")
	}

	profiles := make([]domain.ContributorProfile, 0, len(raw))
	for i, r := range raw {
		p, err := r.Build(ip.validator)
		if err != nil {
			return nil, fmt.Errorf("profile %d (%s) validation failed: %w", i, r.Name, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadRegulatoryConfig loads constants tables from a YAML file. An empty filename
// returns the embedded tables.
func (ip *InputParser) LoadRegulatoryConfig(filename string) (*domain.RegulatoryConfig, error) {
	data := defaultTables
	if filename != "" {
		var err error
		data, err = os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read regulatory config file %s: %w", filename, err)
		}
	}

	var rc domain.RegulatoryConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory YAML: %w", err)
	}
	if err := ip.validateRegulatoryConfig(&rc); err != nil {
		return nil, fmt.Errorf("regulatory config validation failed: %w", err)
	}
	return &rc, nil
}

// ResolveConstants picks the table for year from the given file (or the embedded
// tables). Year 0 selects the most recent table.
func (ip *InputParser) ResolveConstants(filename string, year int) (domain.RegulatoryConstants, error) {
	rc, err := ip.LoadRegulatoryConfig(filename)
	if err != nil {
		return domain.RegulatoryConstants{}, err
	}
	if year == 0 {
		return rc.Latest()
	}
	return rc.ForYear(year)
}

func (ip *InputParser) validateRegulatoryConfig(rc *domain.RegulatoryConfig) error {
	if len(rc.Tables) == 0 {
		return fmt.Errorf("at least one constants table is required")
	}
	seen := make(map[int]bool, len(rc.Tables))
	for _, t := range rc.Tables {
		if seen[t.Year] {
			return fmt.Errorf("duplicate constants table for year %d", t.Year)
		}
		seen[t.Year] = true
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
