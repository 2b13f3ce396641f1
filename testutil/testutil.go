// Package testutil loads golden parse/tokenize scenarios from YAML
// fixtures, the same way the teacher's test harness loads its own DDL
// fixtures, so adding a scenario never requires recompiling a literal Go
// string table.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/k0kubun/rbparse/internal/rblog"
)

func init() {
	rblog.InitTestSlog()
}

// Scenario is one golden fixture: an input program and the expected
// printer output lines, or the expected tokenize lines.
type Scenario struct {
	Name     string   `yaml:"-"`
	Input    string   `yaml:"input"`
	Printer  []string `yaml:"printer,omitempty"`
	Tokenize []string `yaml:"tokenize,omitempty"`
}

// LoadScenarios reads every testdata/*.yml file matching glob and decodes
// it as a name-keyed map of Scenario, setting each Scenario's Name from
// its map key.
func LoadScenarios(glob string) (map[string]Scenario, error) {
	files, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}

	ret := map[string]Scenario{}
	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		var scenarios map[string]Scenario
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		if err := dec.Decode(&scenarios); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		for name, s := range scenarios {
			s.Name = name
			ret[name] = s
		}
	}
	return ret, nil
}
