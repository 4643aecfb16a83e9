package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// TestPaper is the original question paper attached to a test. When
// present, its file is prepended to the grading material so the provider
// can match answers to questions.
type TestPaper struct{ ent.Schema }

func (TestPaper) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "test_papers"},
	}
}

func (TestPaper) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("file_url").NotEmpty(),
		field.String("content_type").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}
