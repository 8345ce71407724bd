package metadata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmcarrillo/docuflow/constants"
)

// Candidate is the best-effort structured metadata pulled from one document.
// Any field may be empty or nil; a failed parse never produces a partial value.
type Candidate struct {
	ReferenceNumber string
	Amount          *decimal.Decimal
	Parties         string
	DateMain        *time.Time
	DateStart       *time.Time
	DateEnd         *time.Time
}

const (
	startKeywords = `fecha\s+de\s+inicio|inicio\s+de\s+vigencia|vigencia\s+desde`
	endKeywords   = `fecha\s+de\s+terminaci[oó]n|fin\s+de\s+vigencia|vigencia\s+hasta`
)

// An override pairs a type condition with a heuristic. The chain is applied
// left-to-right, last match wins, which makes the precedence between generic,
// purchase-order and contract heuristics auditable in one place.
type override struct {
	name      string
	appliesTo func(typeCode string) bool
	apply     func(text string, c *Candidate)
}

func anyType(string) bool { return true }

func onlyType(code constants.TypeCode) func(string) bool {
	return func(typeCode string) bool { return typeCode == string(code) }
}

var overrideChain = []override{
	{name: "generic", appliesTo: anyType, apply: applyGeneric},
	{name: "po-reference", appliesTo: onlyType(constants.TypePurchaseOrder), apply: applyPOReference},
	{name: "keyword-amount", appliesTo: anyType, apply: applyKeywordAmount},
	{name: "contract-dates", appliesTo: onlyType(constants.TypeContract), apply: applyContractDates},
	// contract-specific amount phrasing takes final precedence
	{name: "contract-amount", appliesTo: onlyType(constants.TypeContract), apply: applyKeywordAmount},
}

// Extract runs the full heuristic chain for the given effective type code.
func Extract(text, typeCode string) Candidate {
	code := constants.NormalizeTypeCode(typeCode)
	var c Candidate
	for _, o := range overrideChain {
		if o.appliesTo(code) {
			o.apply(text, &c)
		}
	}
	return c
}

func applyGeneric(text string, c *Candidate) {
	if dates := FindDates(text); len(dates) > 0 {
		c.DateMain = &dates[0]
	}
	c.ReferenceNumber = FindReferenceNumber(text)
	c.Amount = FindAmount(text)
	c.Parties = FindParties(text)
}

func applyPOReference(text string, c *Candidate) {
	if ref := FindPurchaseOrderNumber(text); ref != "" {
		c.ReferenceNumber = ref
	}
}

func applyKeywordAmount(text string, c *Candidate) {
	if amount := FindAmountByKeyword(text); amount != nil {
		c.Amount = amount
	}
}

func applyContractDates(text string, c *Candidate) {
	c.DateStart = FindDateByKeyword(text, startKeywords)
	c.DateEnd = FindDateByKeyword(text, endKeywords)
}
