package organize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule maps one extension to a category
type Rule struct {
	Extension string `yaml:"extension"`
	Category  string `yaml:"category"`
}

// rulesFile is the on-disk shape of a rules override file:
//
//	rules:
//	  - extension: .sketch
//	    category: images
//	  - extension: .bak
//	    category: archives
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads extension rules from a YAML file
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return f.Rules, nil
}

// ApplyRulesFile loads a YAML rules file into the classifier. A rule naming a
// category outside the closed set fails the whole load; the category set
// stays closed no matter what the file says.
func (c *Classifier) ApplyRulesFile(path string) error {
	rules, err := LoadRules(path)
	if err != nil {
		return err
	}
	for _, r := range rules {
		if err := c.AddRule(r.Extension, Category(r.Category)); err != nil {
			return fmt.Errorf("rules file %s: %w", path, err)
		}
	}
	return nil
}
