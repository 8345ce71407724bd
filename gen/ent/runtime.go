// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/db/ent/schema"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[1].Descriptor()
	// document.DefaultTitle holds the default value on creation for the title field.
	document.DefaultTitle = documentDescTitle.Default.(string)
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = documentDescTitle.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescEnabled is the schema descriptor for enabled field.
	documentDescEnabled := documentFields[5].Descriptor()
	// document.DefaultEnabled holds the default value on creation for the enabled field.
	document.DefaultEnabled = documentDescEnabled.Default.(bool)
	// documentDescExtractedText is the schema descriptor for extracted_text field.
	documentDescExtractedText := documentFields[7].Descriptor()
	// document.DefaultExtractedText holds the default value on creation for the extracted_text field.
	document.DefaultExtractedText = documentDescExtractedText.Default.(string)
	// documentDescIsOcr is the schema descriptor for is_ocr field.
	documentDescIsOcr := documentFields[8].Descriptor()
	// document.DefaultIsOcr holds the default value on creation for the is_ocr field.
	document.DefaultIsOcr = documentDescIsOcr.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[10].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[11].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentmetadataFields := schema.DocumentMetadata{}.Fields()
	_ = documentmetadataFields
	// documentmetadataDescParties is the schema descriptor for parties field.
	documentmetadataDescParties := documentmetadataFields[2].Descriptor()
	// documentmetadata.DefaultParties holds the default value on creation for the parties field.
	documentmetadata.DefaultParties = documentmetadataDescParties.Default.(string)
	// documentmetadataDescReferenceNumber is the schema descriptor for reference_number field.
	documentmetadataDescReferenceNumber := documentmetadataFields[6].Descriptor()
	// documentmetadata.DefaultReferenceNumber holds the default value on creation for the reference_number field.
	documentmetadata.DefaultReferenceNumber = documentmetadataDescReferenceNumber.Default.(string)
	// documentmetadata.ReferenceNumberValidator is a validator for the "reference_number" field. It is called by the builders before save.
	documentmetadata.ReferenceNumberValidator = documentmetadataDescReferenceNumber.Validators[0].(func(string) error)
	// documentmetadataDescNotes is the schema descriptor for notes field.
	documentmetadataDescNotes := documentmetadataFields[8].Descriptor()
	// documentmetadata.DefaultNotes holds the default value on creation for the notes field.
	documentmetadata.DefaultNotes = documentmetadataDescNotes.Default.(string)
	// documentmetadataDescID is the schema descriptor for id field.
	documentmetadataDescID := documentmetadataFields[0].Descriptor()
	// documentmetadata.DefaultID holds the default value on creation for the id field.
	documentmetadata.DefaultID = documentmetadataDescID.Default.(func() uuid.UUID)
	documenttypeFields := schema.DocumentType{}.Fields()
	_ = documenttypeFields
	// documenttypeDescCode is the schema descriptor for code field.
	documenttypeDescCode := documenttypeFields[0].Descriptor()
	// documenttype.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	documenttype.CodeValidator = func() func(string) error {
		validators := documenttypeDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documenttypeDescName is the schema descriptor for name field.
	documenttypeDescName := documenttypeFields[1].Descriptor()
	// documenttype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	documenttype.NameValidator = func() func(string) error {
		validators := documenttypeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documenttypeDescDescription is the schema descriptor for description field.
	documenttypeDescDescription := documenttypeFields[2].Descriptor()
	// documenttype.DefaultDescription holds the default value on creation for the description field.
	documenttype.DefaultDescription = documenttypeDescDescription.Default.(string)
	// documenttypeDescIsActive is the schema descriptor for is_active field.
	documenttypeDescIsActive := documenttypeFields[3].Descriptor()
	// documenttype.DefaultIsActive holds the default value on creation for the is_active field.
	documenttype.DefaultIsActive = documenttypeDescIsActive.Default.(bool)
	documentversionFields := schema.DocumentVersion{}.Fields()
	_ = documentversionFields
	// documentversionDescVersionNumber is the schema descriptor for version_number field.
	documentversionDescVersionNumber := documentversionFields[2].Descriptor()
	// documentversion.DefaultVersionNumber holds the default value on creation for the version_number field.
	documentversion.DefaultVersionNumber = documentversionDescVersionNumber.Default.(int)
	// documentversion.VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	documentversion.VersionNumberValidator = documentversionDescVersionNumber.Validators[0].(func(int) error)
	// documentversionDescFilePath is the schema descriptor for file_path field.
	documentversionDescFilePath := documentversionFields[3].Descriptor()
	// documentversion.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	documentversion.FilePathValidator = documentversionDescFilePath.Validators[0].(func(string) error)
	// documentversionDescFileName is the schema descriptor for file_name field.
	documentversionDescFileName := documentversionFields[4].Descriptor()
	// documentversion.DefaultFileName holds the default value on creation for the file_name field.
	documentversion.DefaultFileName = documentversionDescFileName.Default.(string)
	// documentversion.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	documentversion.FileNameValidator = documentversionDescFileName.Validators[0].(func(string) error)
	// documentversionDescMimeType is the schema descriptor for mime_type field.
	documentversionDescMimeType := documentversionFields[5].Descriptor()
	// documentversion.DefaultMimeType holds the default value on creation for the mime_type field.
	documentversion.DefaultMimeType = documentversionDescMimeType.Default.(string)
	// documentversion.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	documentversion.MimeTypeValidator = documentversionDescMimeType.Validators[0].(func(string) error)
	// documentversionDescFileHashSha256 is the schema descriptor for file_hash_sha256 field.
	documentversionDescFileHashSha256 := documentversionFields[6].Descriptor()
	// documentversion.DefaultFileHashSha256 holds the default value on creation for the file_hash_sha256 field.
	documentversion.DefaultFileHashSha256 = documentversionDescFileHashSha256.Default.(string)
	// documentversion.FileHashSha256Validator is a validator for the "file_hash_sha256" field. It is called by the builders before save.
	documentversion.FileHashSha256Validator = documentversionDescFileHashSha256.Validators[0].(func(string) error)
	// documentversionDescUploadedAt is the schema descriptor for uploaded_at field.
	documentversionDescUploadedAt := documentversionFields[8].Descriptor()
	// documentversion.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	documentversion.DefaultUploadedAt = documentversionDescUploadedAt.Default.(func() time.Time)
	// documentversionDescID is the schema descriptor for id field.
	documentversionDescID := documentversionFields[0].Descriptor()
	// documentversion.DefaultID holds the default value on creation for the id field.
	documentversion.DefaultID = documentversionDescID.Default.(func() uuid.UUID)
}
