package palcfg

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geolabel/pal/cost"
)

// yamlDoc mirrors Options in a form yaml.v3 can unmarshal directly,
// using lower-snake-case keys so a hand-edited tuning file reads
// naturally.
type yamlDoc struct {
	EngineVersion           int  `yaml:"engine_version"`
	MaxChainDegree          int  `yaml:"max_chain_degree"`
	DisplayAll              bool `yaml:"display_all"`
	DiscriminantLoopEnabled bool `yaml:"discriminant_loop_enabled"`
}

// LoadYAML reads solver tuning from a YAML file, falling back to
// DefaultOptions for any field the file omits.
func LoadYAML(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	doc := yamlDoc{
		EngineVersion:           int(cost.PlacementEngineVersion2),
		MaxChainDegree:          DefaultOptions().MaxChainDegree,
		DisplayAll:              false,
		DiscriminantLoopEnabled: true,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Options{}, err
	}

	return Options{
		EngineVersion:           cost.EngineVersion(doc.EngineVersion),
		MaxChainDegree:          doc.MaxChainDegree,
		DisplayAll:              doc.DisplayAll,
		DiscriminantLoopEnabled: doc.DiscriminantLoopEnabled,
	}, nil
}
