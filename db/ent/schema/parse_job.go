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
	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/db/ent/schema/utils"
)

type ParseJob struct{ ent.Schema }

func (ParseJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_jobs"},
	}
}

func (ParseJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("document_url").NotEmpty(),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("page_count").Default(0),
		field.String("merged_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("warning_count").Default(0),
		field.Int("line_item_count").Default(0),
		field.String("summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ParseJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> at most ONE invoice record
		edge.To("invoice", InvoiceRecord.Type).Unique(),
	}
}

func (ParseJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("document_url"),
	}
}
