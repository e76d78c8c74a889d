package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
	assert.NotNil(t, parser.Validator(), "Should carry a validator")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	profiles, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, profiles)
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	parser := NewInputParser()
	profiles, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, profiles)
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_SingleProfile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "profile.yaml")

	content := `
profile:
  name: "Carla Base"
  current_age: 60
  desired_retirement_age: 65
  weeks_contributed: 1200
  historical_wage: 650.50
  has_spouse: true
  children: 0
  dependent_parents: 1
  still_contributing: no
  continuation: "sí"
  continuation_start_age: 61
  continuation_wage: 2828.50
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	parser := NewInputParser()
	profiles, err := parser.LoadFromFile(file)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "Carla Base", p.Name)
	assert.True(t, p.CurrentAge.Equal(dec("60")))
	assert.Equal(t, 65, p.DesiredRetirementAge)
	assert.Equal(t, 1200, p.WeeksContributed)
	assert.True(t, p.HistoricalWage.Equal(dec("650.5")))
	assert.True(t, p.Dependents.HasSpouse)
	assert.Equal(t, 1, p.Dependents.DependentParents)
	assert.False(t, p.StillContributing)
	assert.True(t, p.Continuation)
	require.NotNil(t, p.ContinuationStartAge)
	assert.True(t, p.ContinuationStartAge.Equal(dec("61")))
}

func TestInputParser_ParseProfiles_List(t *testing.T) {
	content := `
profiles:
  - name: Ana
    current_age: 58
    desired_retirement_age: 60
    weeks_contributed: 800
    historical_wage: 300
  - name: Bruno
    current_age: 55
    desired_retirement_age: 65
    weeks_contributed: 1500
    historical_wage: 900
    still_contributing: x
    contribution_wage: 1000
`
	profiles, err := NewInputParser().ParseProfiles([]byte(content))
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Ana", profiles[0].Name)
	assert.Equal(t, "Bruno", profiles[1].Name)
	assert.True(t, profiles[1].StillContributing)
}

func TestInputParser_ParseProfiles_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.ParseProfiles([]byte("something_else: 1\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no profiles found")

	content := `
profiles:
  - name: Ana
    current_age: 58
    desired_retirement_age: 60
    weeks_contributed: 800
    historical_wage: 300
  - name: Bruno
    current_age: 55
    desired_retirement_age: 65
    weeks_contributed: -4
    historical_wage: 900
`
	_, err = parser.ParseProfiles([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile 1 (Bruno) validation failed")
	assert.Contains(t, err.Error(), "weeks_contributed")
}
