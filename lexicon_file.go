package router

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLexiconFile reads a lexicon from a YAML file keyed by agent kind:
//
//	research:
//	  - term: research
//	    weight: 5
//	navigation:
//	  - term: go to
//	    weight: 3
//
// Unknown kinds and malformed entries are rejected here so retuned lexicons
// fail at startup, not per request.
func LoadLexiconFile(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var raw map[string][]KeywordEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}

	lexicon := make(Lexicon, len(raw))
	for name, entries := range raw {
		kind := AgentKind(name)
		if !kind.Valid() {
			return nil, &ConfigError{
				Field:  "Lexicon",
				Reason: fmt.Sprintf("file %s: unknown agent kind %q", path, name),
			}
		}
		lexicon[kind] = entries
	}

	return lexicon, nil
}

// MarshalLexicon renders a lexicon as YAML in canonical kind order, suitable
// for dumping the active tables for hand retuning.
func MarshalLexicon(l Lexicon) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, kind := range AgentKinds {
		entries := l[kind]
		if len(entries) == 0 {
			continue
		}
		var value yaml.Node
		if err := value.Encode(entries); err != nil {
			return nil, fmt.Errorf("failed to encode lexicon for %s: %w", kind, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(kind)},
			&value,
		)
	}
	return yaml.Marshal(root)
}
