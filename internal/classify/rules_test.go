package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcarrillo/docuflow/internal/common"
)

func TestLoadRulesEmbeddedDefault(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "CONTRACT", rules[0].Code)
	assert.Equal(t, "PO", rules[1].Code)
	assert.Equal(t, "CERT", rules[2].Code)
	for _, r := range rules {
		assert.NotEmpty(t, r.Patterns)
	}
}

func TestLoadRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`types:
  - code: INVOICE
    patterns: ["factura", "iva"]
`), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "INVOICE", rules[0].Code)
	assert.Len(t, rules[0].Patterns, 2)
}

func TestLoadRulesMissingFileIsConfigError(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)
}

func TestParseRulesRejectsInvalidYAML(t *testing.T) {
	_, err := parseRules([]byte("types: [unbalanced"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)
}

func TestParseRulesRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing types":      `{}`,
		"empty types":        "types: []\n",
		"missing code":       "types:\n  - patterns: [\"x\"]\n",
		"empty patterns":     "types:\n  - code: A\n    patterns: []\n",
		"unknown key":        "types:\n  - code: A\n    patterns: [\"x\"]\n    extra: 1\n",
		"non-string pattern": "types:\n  - code: A\n    patterns: [1]\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRules([]byte(raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrConfig)
		})
	}
}

func TestParseRulesRejectsBadRegexp(t *testing.T) {
	_, err := parseRules([]byte("types:\n  - code: A\n    patterns: [\"(\"]\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)
}

func TestParseRulesCompilesCaseInsensitive(t *testing.T) {
	rules, err := parseRules([]byte("types:\n  - code: A\n    patterns: [\"factura\"]\n"))
	require.NoError(t, err)
	assert.True(t, rules[0].Patterns[0].MatchString("FACTURA"))
}
