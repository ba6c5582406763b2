package scenario_test

import "gopkg.in/yaml.v3"

// yamlCounts renders a chain document holding counts.
func yamlCounts(counts [][]int) ([]byte, error) {
	return yaml.Marshal(map[string]any{"counts": counts})
}
