package utils

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	parserpb "github.com/parsewell/invoice-parser/gen/proto/parser/v1"
	"github.com/parsewell/invoice-parser/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBInvoice(inv *entity.Invoice) *parserpb.Invoice {
	items := make([]*parserpb.LineItem, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = &parserpb.LineItem{
			Description: li.Description,
			Quantity:    int32(li.Quantity),
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
			Bbox: &parserpb.BoundingBox{
				X:    li.BBox.X,
				Y:    li.BBox.Y,
				W:    li.BBox.W,
				H:    li.BBox.H,
				Page: int32(li.BBox.Page),
			},
		}
	}
	return &parserpb.Invoice{
		Vendor:        inv.Vendor,
		InvoiceDate:   inv.InvoiceDate,
		InvoiceNumber: inv.InvoiceNumber,
		Currency:      inv.Currency,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		LineItems:     items,
	}
}

func ToPBWarnings(warnings []entity.Warning) []*parserpb.Warning {
	out := make([]*parserpb.Warning, 0, len(warnings))
	for _, w := range warnings {
		pb := &parserpb.Warning{
			Code:    w.Code,
			Message: w.Message,
		}
		// Detail values are primitives and string slices; conversion
		// failures drop the details, never the warning.
		if details, err := structpb.NewStruct(normalizeDetails(w.Details)); err == nil {
			pb.Details = details
		}
		out = append(out, pb)
	}
	return out
}

// normalizeDetails rewrites detail values structpb cannot represent
// directly ([]string, nil ratios) into plain JSON-compatible forms.
func normalizeDetails(details map[string]any) map[string]any {
	out := make(map[string]any, len(details))
	for k, v := range details {
		switch t := v.(type) {
		case []string:
			vals := make([]any, len(t))
			for i, s := range t {
				vals[i] = s
			}
			out[k] = vals
		default:
			out[k] = v
		}
	}
	return out
}

func ToPBParseJob(j *entity.ParseJob) *parserpb.ParseJob {
	pb := &parserpb.ParseJob{
		Id:            j.ID.String(),
		DocumentUrl:   j.DocumentURL,
		Status:        j.Status,
		PageCount:     int32(j.PageCount),
		WarningCount:  int32(j.WarningCount),
		LineItemCount: int32(j.LineItemCount),
		ErrorMessage:  strOrEmpty(j.ErrorMessage),
		Summary:       strOrEmpty(j.Summary),
		StartedAt:     j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func ToPBInvoiceRecord(r *entity.InvoiceRecord) *parserpb.InvoiceRecord {
	return &parserpb.InvoiceRecord{
		Id:        r.ID.String(),
		JobId:     r.JobID.String(),
		Invoice:   ToPBInvoice(&r.Invoice),
		Warnings:  ToPBWarnings(r.Warnings),
		Summary:   r.Summary,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
