// Package classify scores normalized text against an ordered, data-driven rule
// table and suggests a document type.
package classify

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jmcarrillo/docuflow/internal/common"
)

// TypeRules couples a type code with its match patterns. The per-type score is
// normalized by pattern count, so types with rule lists of different sizes
// stay comparable.
type TypeRules struct {
	Code     string
	Patterns []*regexp.Regexp
}

// Result is the classifier's suggestion. Score is the fraction of matched
// rules for the winning type; 0.0 is a valid result, not an error.
type Result struct {
	TypeCode string
	Score    float64
}

type Classifier struct {
	rules []TypeRules
}

// New builds a classifier over an ordered rule table. The first entry is the
// fallback type and wins ties.
func New(rules []TypeRules) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, common.WrapError(common.ErrConfig, "classifier", errors.New("rule table is empty"))
	}
	return &Classifier{rules: rules}, nil
}

// Classify is a total function: any input yields the best-matching type code
// and a score in [0,1].
func (c *Classifier) Classify(text string) Result {
	t := strings.ToLower(text)

	best := Result{TypeCode: c.rules[0].Code, Score: 0.0}
	for _, tr := range c.rules {
		matched := 0
		for _, p := range tr.Patterns {
			if p.MatchString(t) {
				matched++
			}
		}
		score := float64(matched) / float64(len(tr.Patterns))
		if score > best.Score {
			best = Result{TypeCode: tr.Code, Score: score}
		}
	}
	return best
}
