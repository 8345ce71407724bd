package constants

// DocStatus is the canonical lifecycle status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	StatusDraft     DocStatus = "DRAFT"     // uploaded, pending review
	StatusValidated DocStatus = "VALIDATED" // reviewed and confirmed
	StatusPublished DocStatus = "PUBLISHED" // visible to consumers
)

var DocStatuses = []string{
	string(StatusDraft),
	string(StatusValidated),
	string(StatusPublished),
}
