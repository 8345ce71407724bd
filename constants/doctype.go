package constants

import "strings"

// TypeCode identifies a document category. The canonical taxonomy lives in the
// document_type table; these are the codes the built-in rule set knows about.
type TypeCode string

const (
	TypeContract      TypeCode = "CONTRACT"
	TypePurchaseOrder TypeCode = "PO"
	TypeCertification TypeCode = "CERT"
)

var allTypes = []TypeCode{
	TypeContract,
	TypePurchaseOrder,
	TypeCertification,
}

func TypeCodes() []string {
	result := make([]string, len(allTypes))
	for i, t := range allTypes {
		result[i] = string(t)
	}
	return result
}

// NormalizeTypeCode uppercases and trims a type code for comparison.
func NormalizeTypeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
