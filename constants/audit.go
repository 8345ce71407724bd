package constants

// AuditAction tags audit events emitted toward the external audit collaborator.
type AuditAction string

const (
	AuditUpload     AuditAction = "UPLOAD"
	AuditOCRExtract AuditAction = "OCR_EXTRACT"
	AuditReviewSave AuditAction = "REVIEW_SAVE"
	AuditValidate   AuditAction = "VALIDATE"
	AuditPublish    AuditAction = "PUBLISH"
	AuditEnable     AuditAction = "ENABLE"
	AuditDisable    AuditAction = "DISABLE"
)
