// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docuflow/v1/documents.proto

package docuflowv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enqueued      bool                   `protobuf:"varint,1,opt,name=enqueued,proto3" json:"enqueued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentResponse) GetEnqueued() bool {
	if x != nil {
		return x.Enqueued
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{4}
}

func (x *ExportDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Document struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title             string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	TypeCode          string                 `protobuf:"bytes,3,opt,name=type_code,json=typeCode,proto3" json:"type_code,omitempty"`
	Status            string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	SuggestedTypeCode string                 `protobuf:"bytes,5,opt,name=suggested_type_code,json=suggestedTypeCode,proto3" json:"suggested_type_code,omitempty"`
	SuggestedScore    float64                `protobuf:"fixed64,6,opt,name=suggested_score,json=suggestedScore,proto3" json:"suggested_score,omitempty"`
	IsOcr             bool                   `protobuf:"varint,7,opt,name=is_ocr,json=isOcr,proto3" json:"is_ocr,omitempty"`
	OcrConfidence     float64                `protobuf:"fixed64,8,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	HasOcrConfidence  bool                   `protobuf:"varint,9,opt,name=has_ocr_confidence,json=hasOcrConfidence,proto3" json:"has_ocr_confidence,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Metadata          *DocumentMetadata      `protobuf:"bytes,12,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Document) GetTypeCode() string {
	if x != nil {
		return x.TypeCode
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetSuggestedTypeCode() string {
	if x != nil {
		return x.SuggestedTypeCode
	}
	return ""
}

func (x *Document) GetSuggestedScore() float64 {
	if x != nil {
		return x.SuggestedScore
	}
	return 0
}

func (x *Document) GetIsOcr() bool {
	if x != nil {
		return x.IsOcr
	}
	return false
}

func (x *Document) GetOcrConfidence() float64 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *Document) GetHasOcrConfidence() bool {
	if x != nil {
		return x.HasOcrConfidence
	}
	return false
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Document) GetMetadata() *DocumentMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type DocumentMetadata struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Parties         string                 `protobuf:"bytes,1,opt,name=parties,proto3" json:"parties,omitempty"`
	ReferenceNumber string                 `protobuf:"bytes,2,opt,name=reference_number,json=referenceNumber,proto3" json:"reference_number,omitempty"`
	Amount          string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	DateMain        string                 `protobuf:"bytes,4,opt,name=date_main,json=dateMain,proto3" json:"date_main,omitempty"`
	DateStart       string                 `protobuf:"bytes,5,opt,name=date_start,json=dateStart,proto3" json:"date_start,omitempty"`
	DateEnd         string                 `protobuf:"bytes,6,opt,name=date_end,json=dateEnd,proto3" json:"date_end,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DocumentMetadata) Reset() {
	*x = DocumentMetadata{}
	mi := &file_docuflow_v1_documents_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentMetadata) ProtoMessage() {}

func (x *DocumentMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_docuflow_v1_documents_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentMetadata.ProtoReflect.Descriptor instead.
func (*DocumentMetadata) Descriptor() ([]byte, []int) {
	return file_docuflow_v1_documents_proto_rawDescGZIP(), []int{7}
}

func (x *DocumentMetadata) GetParties() string {
	if x != nil {
		return x.Parties
	}
	return ""
}

func (x *DocumentMetadata) GetReferenceNumber() string {
	if x != nil {
		return x.ReferenceNumber
	}
	return ""
}

func (x *DocumentMetadata) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *DocumentMetadata) GetDateMain() string {
	if x != nil {
		return x.DateMain
	}
	return ""
}

func (x *DocumentMetadata) GetDateStart() string {
	if x != nil {
		return x.DateStart
	}
	return ""
}

func (x *DocumentMetadata) GetDateEnd() string {
	if x != nil {
		return x.DateEnd
	}
	return ""
}

var File_docuflow_v1_documents_proto protoreflect.FileDescriptor

const file_docuflow_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x1bdocuflow/v1/documents.proto\x12\vdocuflow.v1\"9\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"5\n" +
	"\x17ProcessDocumentResponse\x12\x1a\n" +
	"\benqueued\x18\x01 \x01(\bR\benqueued\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.docuflow.v1.DocumentR\bdocument\"N\n" +
	"\x16ExportDocumentsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xa3\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1b\n" +
	"\ttype_code\x18\x03 \x01(\tR\btypeCode\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12.\n" +
	"\x13suggested_type_code\x18\x05 \x01(\tR\x11suggestedTypeCode\x12'\n" +
	"\x0fsuggested_score\x18\x06 \x01(\x01R\x0esuggestedScore\x12\x15\n" +
	"\x06is_ocr\x18\a \x01(\bR\x05isOcr\x12%\n" +
	"\x0eocr_confidence\x18\b \x01(\x01R\rocrConfidence\x12,\n" +
	"\x12has_ocr_confidence\x18\t \x01(\bR\x10hasOcrConfidence\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\x129\n" +
	"\bmetadata\x18\f \x01(\v2\x1d.docuflow.v1.DocumentMetadataR\bmetadata\"\xc6\x01\n" +
	"\x10DocumentMetadata\x12\x18\n" +
	"\aparties\x18\x01 \x01(\tR\aparties\x12)\n" +
	"\x10reference_number\x18\x02 \x01(\tR\x0freferenceNumber\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\x12\x1b\n" +
	"\tdate_main\x18\x04 \x01(\tR\bdateMain\x12\x1d\n" +
	"\n" +
	"date_start\x18\x05 \x01(\tR\tdateStart\x12\x19\n" +
	"\bdate_end\x18\x06 \x01(\tR\adateEnd2\xa0\x02\n" +
	"\x10DocumentsService\x12\\\n" +
	"\x0fProcessDocument\x12#.docuflow.v1.ProcessDocumentRequest\x1a$.docuflow.v1.ProcessDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.docuflow.v1.GetDocumentRequest\x1a .docuflow.v1.GetDocumentResponse\x12\\\n" +
	"\x0fExportDocuments\x12#.docuflow.v1.ExportDocumentsRequest\x1a$.docuflow.v1.ExportDocumentsResponseB;Z9github.com/jmcarrillo/docuflow/gen/docuflow/v1;docuflowv1b\x06proto3"

var (
	file_docuflow_v1_documents_proto_rawDescOnce sync.Once
	file_docuflow_v1_documents_proto_rawDescData []byte
)

func file_docuflow_v1_documents_proto_rawDescGZIP() []byte {
	file_docuflow_v1_documents_proto_rawDescOnce.Do(func() {
		file_docuflow_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docuflow_v1_documents_proto_rawDesc), len(file_docuflow_v1_documents_proto_rawDesc)))
	})
	return file_docuflow_v1_documents_proto_rawDescData
}

var file_docuflow_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_docuflow_v1_documents_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),  // 0: docuflow.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil), // 1: docuflow.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),      // 2: docuflow.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 3: docuflow.v1.GetDocumentResponse
	(*ExportDocumentsRequest)(nil),  // 4: docuflow.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 5: docuflow.v1.ExportDocumentsResponse
	(*Document)(nil),                // 6: docuflow.v1.Document
	(*DocumentMetadata)(nil),        // 7: docuflow.v1.DocumentMetadata
}
var file_docuflow_v1_documents_proto_depIdxs = []int32{
	6, // 0: docuflow.v1.GetDocumentResponse.document:type_name -> docuflow.v1.Document
	7, // 1: docuflow.v1.Document.metadata:type_name -> docuflow.v1.DocumentMetadata
	0, // 2: docuflow.v1.DocumentsService.ProcessDocument:input_type -> docuflow.v1.ProcessDocumentRequest
	2, // 3: docuflow.v1.DocumentsService.GetDocument:input_type -> docuflow.v1.GetDocumentRequest
	4, // 4: docuflow.v1.DocumentsService.ExportDocuments:input_type -> docuflow.v1.ExportDocumentsRequest
	1, // 5: docuflow.v1.DocumentsService.ProcessDocument:output_type -> docuflow.v1.ProcessDocumentResponse
	3, // 6: docuflow.v1.DocumentsService.GetDocument:output_type -> docuflow.v1.GetDocumentResponse
	5, // 7: docuflow.v1.DocumentsService.ExportDocuments:output_type -> docuflow.v1.ExportDocumentsResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_docuflow_v1_documents_proto_init() }
func file_docuflow_v1_documents_proto_init() {
	if File_docuflow_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docuflow_v1_documents_proto_rawDesc), len(file_docuflow_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docuflow_v1_documents_proto_goTypes,
		DependencyIndexes: file_docuflow_v1_documents_proto_depIdxs,
		MessageInfos:      file_docuflow_v1_documents_proto_msgTypes,
	}.Build()
	File_docuflow_v1_documents_proto = out.File
	file_docuflow_v1_documents_proto_goTypes = nil
	file_docuflow_v1_documents_proto_depIdxs = nil
}
