package backend

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSynonyms indicates the synonyms file could not be read or parsed.
var ErrInvalidSynonyms = errors.New("backend: invalid synonyms file")

// SynonymGroup is a set of terms treated as equivalent by the index analyzer.
type SynonymGroup struct {
	Terms []string `yaml:"terms"`
}

// synonymsFile is the YAML document shape:
//
//	groups:
//	  - terms: [laptop, notebook]
//	  - terms: [tv, television, telly]
type synonymsFile struct {
	Groups []SynonymGroup `yaml:"groups"`
}

// LoadSynonyms reads synonym groups from a YAML file. Groups with fewer than
// two terms are rejected since they cannot expand anything.
func LoadSynonyms(path string) ([]SynonymGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidSynonyms, err)
	}

	var doc synonymsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSynonyms, err)
	}

	for i, group := range doc.Groups {
		if len(group.Terms) < 2 {
			return nil, errors.Join(ErrInvalidSynonyms,
				fmt.Errorf("group %d must contain at least two terms", i))
		}
	}
	return doc.Groups, nil
}

// rules renders groups in the Solr synonym format OpenSearch expects,
// e.g. "laptop, notebook".
func synonymRules(groups []SynonymGroup) []string {
	rules := make([]string, 0, len(groups))
	for _, group := range groups {
		rules = append(rules, strings.Join(group.Terms, ", "))
	}
	return rules
}
