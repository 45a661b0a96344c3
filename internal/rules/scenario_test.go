package rules

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_CanonicalRules(t *testing.T) {
	set, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"MOMENTUM_POS", "MOMENTUM_NEG", "VOLATILE_SPIKE", "STEADY"}, set.ValidLabels)
}

func TestRunScenarios_GoldenResults(t *testing.T) {
	set, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)

	results, allPassed := set.RunScenarios(scenarios)
	assert.True(t, allPassed)

	data, err := json.MarshalIndent(results, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "scenario_results", data)
}

func TestRunScenarios_ReportsFailures(t *testing.T) {
	set := mustSet(t, canonicalDoc())
	results, allPassed := set.RunScenarios([]Scenario{
		{Name: "wrong-expectation", Metrics: map[string]float64{"ctr": 0.1}, Mode: "serp", ExpectLabel: "STEADY"},
	})

	assert.False(t, allPassed)
	require.Len(t, results, 1)
	assert.Equal(t, "MOMENTUM_NEG", results[0].Decided)
	assert.False(t, results[0].Passed)
}

func TestLoadScenarios_EmptyFileIsAnError(t *testing.T) {
	_, err := LoadScenarios("testdata/rules.yaml") // wrong shape, no scenarios key
	assert.Error(t, err)
}
