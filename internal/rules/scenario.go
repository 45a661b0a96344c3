package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one declarative decision check: a metrics vector, a mode, and
// the label the rule set is expected to choose. Scenario files let rule
// authors pin down decision behavior without writing Go.
type Scenario struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Metrics     map[string]float64 `yaml:"metrics"`
	Mode        string             `yaml:"mode"`
	ExpectLabel string             `yaml:"expect_label"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a YAML scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenarios: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("load scenarios %s: %w", path, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("load scenarios %s: no scenarios", path)
	}
	return file.Scenarios, nil
}

// ScenarioResult is the outcome of running one scenario.
type ScenarioResult struct {
	Name     string `json:"name"`
	Decided  string `json:"decided"`
	Expected string `json:"expected"`
	Passed   bool   `json:"passed"`
	Err      string `json:"err,omitempty"`
}

// RunScenarios evaluates every scenario against the set. The second return
// is true only when all scenarios passed.
func (s *Set) RunScenarios(scenarios []Scenario) ([]ScenarioResult, bool) {
	results := make([]ScenarioResult, 0, len(scenarios))
	allPassed := true
	for _, sc := range scenarios {
		res := ScenarioResult{Name: sc.Name, Expected: sc.ExpectLabel}
		decided, err := s.Decide(sc.Metrics, sc.Mode)
		if err != nil {
			res.Err = err.Error()
		} else {
			res.Decided = decided
			res.Passed = decided == sc.ExpectLabel
		}
		if !res.Passed {
			allPassed = false
		}
		results = append(results, res)
	}
	return results, allPassed
}
