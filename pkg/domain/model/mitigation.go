package model

// Mitigation is a recommended step to move a table away from the 32-bit ceiling
type Mitigation struct {
	Key        string `json:"key"`
	Step       string `json:"step"`
	Difficulty string `json:"difficulty"`
	Impact     string `json:"impact"` // Application impact
}

var mitigations = [...]Mitigation{
	{Key: "1", Step: "Change ID column to BIGINT", Difficulty: "Medium", Impact: "None"},
	{Key: "2", Step: "Implement ID reset with offset", Difficulty: "Hard", Impact: "Medium"},
	{Key: "3", Step: "Partition the table", Difficulty: "Hard", Impact: "Low"},
	{Key: "4", Step: "Implement UUID instead of sequential IDs", Difficulty: "Hard", Impact: "High"},
}

// Mitigations returns a copy of the mitigation catalog
func Mitigations() []Mitigation {
	result := make([]Mitigation, len(mitigations))
	copy(result, mitigations[:])
	return result
}

// FindMitigationByStep returns the catalog entry whose step text matches
func FindMitigationByStep(step string) *Mitigation {
	for _, m := range mitigations {
		if m.Step == step {
			result := m
			return &result
		}
	}
	return nil
}

// Advice is a generated mitigation recommendation for a report
type Advice struct {
	Summary         string      `json:"summary"`
	RecommendedStep string      `json:"recommended_step"`
	Mitigation      *Mitigation `json:"mitigation,omitempty"` // Catalog entry matching RecommendedStep
}
