package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Test struct{ ent.Schema }

func (Test) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tests"},
	}
}

func (Test) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("organization_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.UUID("teacher_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Test) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("tests").
			Field("organization_id").
			Required().
			Unique(),
		edge.From("course", Course.Type).
			Ref("tests").
			Field("course_id").
			Required().
			Unique(),
		// ONE test -> optional ONE question paper
		edge.To("test_paper", TestPaper.Type).Unique(),
		edge.To("magic_links", MagicLink.Type),
		edge.To("submissions", Submission.Type),
	}
}
