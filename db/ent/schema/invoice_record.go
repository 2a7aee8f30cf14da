package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/internal/entity"
)

type InvoiceRecord struct{ ent.Schema }

func (InvoiceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_records"},
	}
}

func (InvoiceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("vendor"),
		field.String("invoice_date"),
		field.String("invoice_number"),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("subtotal").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.JSON("line_items", []entity.LineItem{}),
		field.JSON("warnings", []entity.Warning{}).Optional(),
		field.String("summary").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (InvoiceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice record -> ONE job (FK: invoice_records.job_id)
		edge.From("job", ParseJob.Type).
			Ref("invoice").
			Field("job_id").
			Required().
			Unique(),
	}
}

func (InvoiceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("invoice_number"),
		index.Fields("created_at"),
	}
}
