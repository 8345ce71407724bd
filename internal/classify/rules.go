package classify

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/jmcarrillo/docuflow/internal/common"
)

//go:embed type_rules.yaml
var defaultRulesYAML []byte

// rulesSchema validates the rule-table artifact before any pattern compiles.
// Type knowledge lives entirely in this data; the classifier never branches
// on specific codes.
const rulesSchema = `{
  "type": "object",
  "required": ["types"],
  "additionalProperties": false,
  "properties": {
    "types": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["code", "patterns"],
        "additionalProperties": false,
        "properties": {
          "code": {"type": "string", "minLength": 1},
          "patterns": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

type rulesFile struct {
	Types []struct {
		Code     string   `yaml:"code"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"types"`
}

// LoadRules reads and compiles a rule table from path, or the embedded default
// table when path is empty. Invalid rule files are configuration errors.
func LoadRules(path string) ([]TypeRules, error) {
	raw := defaultRulesYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, common.WrapError(common.ErrConfig, "read rule table", err)
		}
		raw = b
	}
	return parseRules(raw)
}

func parseRules(raw []byte) ([]TypeRules, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, common.WrapError(common.ErrConfig, "parse rule table", err)
	}

	schema, err := jsonschema.CompileString("type_rules.schema.json", rulesSchema)
	if err != nil {
		return nil, common.WrapError(common.ErrConfig, "compile rule schema", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, common.WrapError(common.ErrConfig, "validate rule table", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, common.WrapError(common.ErrConfig, "decode rule table", err)
	}

	rules := make([]TypeRules, 0, len(file.Types))
	for _, t := range file.Types {
		patterns := make([]*regexp.Regexp, 0, len(t.Patterns))
		for _, p := range t.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, common.WrapError(common.ErrConfig, "compile rule pattern",
					fmt.Errorf("type %s pattern %q: %w", t.Code, p, err))
			}
			patterns = append(patterns, re)
		}
		rules = append(rules, TypeRules{Code: t.Code, Patterns: patterns})
	}
	return rules, nil
}
