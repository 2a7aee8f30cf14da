// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: parser/v1/parser.proto

package parserv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
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

type BoundingBox struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float64                `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	W             float64                `protobuf:"fixed64,3,opt,name=w,proto3" json:"w,omitempty"`
	H             float64                `protobuf:"fixed64,4,opt,name=h,proto3" json:"h,omitempty"`
	Page          int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoundingBox) Reset() {
	*x = BoundingBox{}
	mi := &file_parser_v1_parser_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoundingBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoundingBox) ProtoMessage() {}

func (x *BoundingBox) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoundingBox.ProtoReflect.Descriptor instead.
func (*BoundingBox) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{0}
}

func (x *BoundingBox) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *BoundingBox) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *BoundingBox) GetW() float64 {
	if x != nil {
		return x.W
	}
	return 0
}

func (x *BoundingBox) GetH() float64 {
	if x != nil {
		return x.H
	}
	return 0
}

func (x *BoundingBox) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      int32                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Amount        float64                `protobuf:"fixed64,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Bbox          *BoundingBox           `protobuf:"bytes,5,opt,name=bbox,proto3" json:"bbox,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_parser_v1_parser_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{1}
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *LineItem) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *LineItem) GetBbox() *BoundingBox {
	if x != nil {
		return x.Bbox
	}
	return nil
}

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        string                 `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,2,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,3,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	Currency      string                 `protobuf:"bytes,4,opt,name=currency,proto3" json:"currency,omitempty"`
	Subtotal      float64                `protobuf:"fixed64,5,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Tax           float64                `protobuf:"fixed64,6,opt,name=tax,proto3" json:"tax,omitempty"`
	Total         float64                `protobuf:"fixed64,7,opt,name=total,proto3" json:"total,omitempty"`
	LineItems     []*LineItem            `protobuf:"bytes,8,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_parser_v1_parser_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{2}
}

func (x *Invoice) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Invoice) GetSubtotal() float64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

func (x *Invoice) GetTax() float64 {
	if x != nil {
		return x.Tax
	}
	return 0
}

func (x *Invoice) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Invoice) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

type Warning struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Details       *structpb.Struct       `protobuf:"bytes,3,opt,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Warning) Reset() {
	*x = Warning{}
	mi := &file_parser_v1_parser_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Warning) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Warning) ProtoMessage() {}

func (x *Warning) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Warning.ProtoReflect.Descriptor instead.
func (*Warning) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{3}
}

func (x *Warning) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Warning) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Warning) GetDetails() *structpb.Struct {
	if x != nil {
		return x.Details
	}
	return nil
}

type ParseJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentUrl   string                 `protobuf:"bytes,2,opt,name=document_url,json=documentUrl,proto3" json:"document_url,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	PageCount     int32                  `protobuf:"varint,4,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	WarningCount  int32                  `protobuf:"varint,5,opt,name=warning_count,json=warningCount,proto3" json:"warning_count,omitempty"`
	LineItemCount int32                  `protobuf:"varint,6,opt,name=line_item_count,json=lineItemCount,proto3" json:"line_item_count,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Summary       string                 `protobuf:"bytes,8,opt,name=summary,proto3" json:"summary,omitempty"`
	StartedAt     string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJob) Reset() {
	*x = ParseJob{}
	mi := &file_parser_v1_parser_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJob) ProtoMessage() {}

func (x *ParseJob) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJob.ProtoReflect.Descriptor instead.
func (*ParseJob) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{4}
}

func (x *ParseJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ParseJob) GetDocumentUrl() string {
	if x != nil {
		return x.DocumentUrl
	}
	return ""
}

func (x *ParseJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ParseJob) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *ParseJob) GetWarningCount() int32 {
	if x != nil {
		return x.WarningCount
	}
	return 0
}

func (x *ParseJob) GetLineItemCount() int32 {
	if x != nil {
		return x.LineItemCount
	}
	return 0
}

func (x *ParseJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ParseJob) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *ParseJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ParseJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type InvoiceRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Invoice       *Invoice               `protobuf:"bytes,3,opt,name=invoice,proto3" json:"invoice,omitempty"`
	Warnings      []*Warning             `protobuf:"bytes,4,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Summary       string                 `protobuf:"bytes,5,opt,name=summary,proto3" json:"summary,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceRecord) Reset() {
	*x = InvoiceRecord{}
	mi := &file_parser_v1_parser_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceRecord) ProtoMessage() {}

func (x *InvoiceRecord) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceRecord.ProtoReflect.Descriptor instead.
func (*InvoiceRecord) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{5}
}

func (x *InvoiceRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InvoiceRecord) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *InvoiceRecord) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

func (x *InvoiceRecord) GetWarnings() []*Warning {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *InvoiceRecord) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *InvoiceRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ParseDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentUrl   string                 `protobuf:"bytes,1,opt,name=document_url,json=documentUrl,proto3" json:"document_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentRequest) Reset() {
	*x = ParseDocumentRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentRequest) ProtoMessage() {}

func (x *ParseDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentRequest.ProtoReflect.Descriptor instead.
func (*ParseDocumentRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{6}
}

func (x *ParseDocumentRequest) GetDocumentUrl() string {
	if x != nil {
		return x.DocumentUrl
	}
	return ""
}

type ParseDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Invoice       *Invoice               `protobuf:"bytes,2,opt,name=invoice,proto3" json:"invoice,omitempty"`
	Warnings      []*Warning             `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Summary       string                 `protobuf:"bytes,4,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentResponse) Reset() {
	*x = ParseDocumentResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentResponse) ProtoMessage() {}

func (x *ParseDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentResponse.ProtoReflect.Descriptor instead.
func (*ParseDocumentResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{7}
}

func (x *ParseDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ParseDocumentResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

func (x *ParseDocumentResponse) GetWarnings() []*Warning {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *ParseDocumentResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type GetParseJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseJobRequest) Reset() {
	*x = GetParseJobRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseJobRequest) ProtoMessage() {}

func (x *GetParseJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseJobRequest.ProtoReflect.Descriptor instead.
func (*GetParseJobRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{8}
}

func (x *GetParseJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetParseJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ParseJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseJobResponse) Reset() {
	*x = GetParseJobResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseJobResponse) ProtoMessage() {}

func (x *GetParseJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseJobResponse.ProtoReflect.Descriptor instead.
func (*GetParseJobResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{9}
}

func (x *GetParseJobResponse) GetJob() *ParseJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{10}
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*InvoiceRecord       `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{11}
}

func (x *ListInvoicesResponse) GetInvoices() []*InvoiceRecord {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{12}
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{13}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_parser_v1_parser_proto protoreflect.FileDescriptor

const file_parser_v1_parser_proto_rawDesc = "" +
	"\n" +
	"\x16parser/v1/parser.proto\x12\tparser.v1\x1a\x1cgoogle/protobuf/struct.proto\"Y\n" +
	"\vBoundingBox\x12\f\n" +
	"\x01x\x18\x01 \x01(\x01R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x01R\x01y\x12\f\n" +
	"\x01w\x18\x03 \x01(\x01R\x01w\x12\f\n" +
	"\x01h\x18\x04 \x01(\x01R\x01h\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\"\xab\x01\n" +
	"\bLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x05R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\x01R\x06amount\x12*\n" +
	"\x04bbox\x18\x05 \x01(\v2\x16.parser.v1.BoundingBoxR\x04bbox\"\xff\x01\n" +
	"\aInvoice\x12\x16\n" +
	"\x06vendor\x18\x01 \x01(\tR\x06vendor\x12!\n" +
	"\finvoice_date\x18\x02 \x01(\tR\vinvoiceDate\x12%\n" +
	"\x0einvoice_number\x18\x03 \x01(\tR\rinvoiceNumber\x12\x1a\n" +
	"\bcurrency\x18\x04 \x01(\tR\bcurrency\x12\x1a\n" +
	"\bsubtotal\x18\x05 \x01(\x01R\bsubtotal\x12\x10\n" +
	"\x03tax\x18\x06 \x01(\x01R\x03tax\x12\x14\n" +
	"\x05total\x18\a \x01(\x01R\x05total\x122\n" +
	"\n" +
	"line_items\x18\b \x03(\v2\x13.parser.v1.LineItemR\tlineItems\"j\n" +
	"\aWarning\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x121\n" +
	"\adetails\x18\x03 \x01(\v2\x17.google.protobuf.StructR\adetails\"\xc0\x02\n" +
	"\bParseJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fdocument_url\x18\x02 \x01(\tR\vdocumentUrl\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"page_count\x18\x04 \x01(\x05R\tpageCount\x12#\n" +
	"\rwarning_count\x18\x05 \x01(\x05R\fwarningCount\x12&\n" +
	"\x0fline_item_count\x18\x06 \x01(\x05R\rlineItemCount\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x18\n" +
	"\asummary\x18\b \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"\xcd\x01\n" +
	"\rInvoiceRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12,\n" +
	"\ainvoice\x18\x03 \x01(\v2\x12.parser.v1.InvoiceR\ainvoice\x12.\n" +
	"\bwarnings\x18\x04 \x03(\v2\x12.parser.v1.WarningR\bwarnings\x12\x18\n" +
	"\asummary\x18\x05 \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"9\n" +
	"\x14ParseDocumentRequest\x12!\n" +
	"\fdocument_url\x18\x01 \x01(\tR\vdocumentUrl\"\xa6\x01\n" +
	"\x15ParseDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12,\n" +
	"\ainvoice\x18\x02 \x01(\v2\x12.parser.v1.InvoiceR\ainvoice\x12.\n" +
	"\bwarnings\x18\x03 \x03(\v2\x12.parser.v1.WarningR\bwarnings\x12\x18\n" +
	"\asummary\x18\x04 \x01(\tR\asummary\"+\n" +
	"\x12GetParseJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"<\n" +
	"\x13GetParseJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.parser.v1.ParseJobR\x03job\"K\n" +
	"\x13ListInvoicesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"L\n" +
	"\x14ListInvoicesResponse\x124\n" +
	"\binvoices\x18\x01 \x03(\v2\x18.parser.v1.InvoiceRecordR\binvoices\"M\n" +
	"\x15ExportInvoicesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x82\x02\n" +
	"\rParserService\x12R\n" +
	"\rParseDocument\x12\x1f.parser.v1.ParseDocumentRequest\x1a .parser.v1.ParseDocumentResponse\x12L\n" +
	"\vGetParseJob\x12\x1d.parser.v1.GetParseJobRequest\x1a\x1e.parser.v1.GetParseJobResponse\x12O\n" +
	"\fListInvoices\x12\x1e.parser.v1.ListInvoicesRequest\x1a\x1f.parser.v1.ListInvoicesResponse2f\n" +
	"\rExportService\x12U\n" +
	"\x0eExportInvoices\x12 .parser.v1.ExportInvoicesRequest\x1a!.parser.v1.ExportInvoicesResponseBBZ@github.com/parsewell/invoice-parser/gen/proto/parser/v1;parserv1b\x06proto3"

var (
	file_parser_v1_parser_proto_rawDescOnce sync.Once
	file_parser_v1_parser_proto_rawDescData []byte
)

func file_parser_v1_parser_proto_rawDescGZIP() []byte {
	file_parser_v1_parser_proto_rawDescOnce.Do(func() {
		file_parser_v1_parser_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_parser_v1_parser_proto_rawDesc), len(file_parser_v1_parser_proto_rawDesc)))
	})
	return file_parser_v1_parser_proto_rawDescData
}

var file_parser_v1_parser_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_parser_v1_parser_proto_goTypes = []any{
	(*BoundingBox)(nil),            // 0: parser.v1.BoundingBox
	(*LineItem)(nil),               // 1: parser.v1.LineItem
	(*Invoice)(nil),                // 2: parser.v1.Invoice
	(*Warning)(nil),                // 3: parser.v1.Warning
	(*ParseJob)(nil),               // 4: parser.v1.ParseJob
	(*InvoiceRecord)(nil),          // 5: parser.v1.InvoiceRecord
	(*ParseDocumentRequest)(nil),   // 6: parser.v1.ParseDocumentRequest
	(*ParseDocumentResponse)(nil),  // 7: parser.v1.ParseDocumentResponse
	(*GetParseJobRequest)(nil),     // 8: parser.v1.GetParseJobRequest
	(*GetParseJobResponse)(nil),    // 9: parser.v1.GetParseJobResponse
	(*ListInvoicesRequest)(nil),    // 10: parser.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),   // 11: parser.v1.ListInvoicesResponse
	(*ExportInvoicesRequest)(nil),  // 12: parser.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil), // 13: parser.v1.ExportInvoicesResponse
	(*structpb.Struct)(nil),        // 14: google.protobuf.Struct
}
var file_parser_v1_parser_proto_depIdxs = []int32{
	0,  // 0: parser.v1.LineItem.bbox:type_name -> parser.v1.BoundingBox
	1,  // 1: parser.v1.Invoice.line_items:type_name -> parser.v1.LineItem
	14, // 2: parser.v1.Warning.details:type_name -> google.protobuf.Struct
	2,  // 3: parser.v1.InvoiceRecord.invoice:type_name -> parser.v1.Invoice
	3,  // 4: parser.v1.InvoiceRecord.warnings:type_name -> parser.v1.Warning
	2,  // 5: parser.v1.ParseDocumentResponse.invoice:type_name -> parser.v1.Invoice
	3,  // 6: parser.v1.ParseDocumentResponse.warnings:type_name -> parser.v1.Warning
	4,  // 7: parser.v1.GetParseJobResponse.job:type_name -> parser.v1.ParseJob
	5,  // 8: parser.v1.ListInvoicesResponse.invoices:type_name -> parser.v1.InvoiceRecord
	6,  // 9: parser.v1.ParserService.ParseDocument:input_type -> parser.v1.ParseDocumentRequest
	8,  // 10: parser.v1.ParserService.GetParseJob:input_type -> parser.v1.GetParseJobRequest
	10, // 11: parser.v1.ParserService.ListInvoices:input_type -> parser.v1.ListInvoicesRequest
	12, // 12: parser.v1.ExportService.ExportInvoices:input_type -> parser.v1.ExportInvoicesRequest
	7,  // 13: parser.v1.ParserService.ParseDocument:output_type -> parser.v1.ParseDocumentResponse
	9,  // 14: parser.v1.ParserService.GetParseJob:output_type -> parser.v1.GetParseJobResponse
	11, // 15: parser.v1.ParserService.ListInvoices:output_type -> parser.v1.ListInvoicesResponse
	13, // 16: parser.v1.ExportService.ExportInvoices:output_type -> parser.v1.ExportInvoicesResponse
	13, // [13:17] is the sub-list for method output_type
	9,  // [9:13] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_parser_v1_parser_proto_init() }
func file_parser_v1_parser_proto_init() {
	if File_parser_v1_parser_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_parser_v1_parser_proto_rawDesc), len(file_parser_v1_parser_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_parser_v1_parser_proto_goTypes,
		DependencyIndexes: file_parser_v1_parser_proto_depIdxs,
		MessageInfos:      file_parser_v1_parser_proto_msgTypes,
	}.Build()
	File_parser_v1_parser_proto = out.File
	file_parser_v1_parser_proto_goTypes = nil
	file_parser_v1_parser_proto_depIdxs = nil
}
