package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MagicLink is a capability token granting submission access to one test.
// The used/used_at pair is informational only; it never blocks another
// student from submitting with the same token. Uniqueness of submissions
// is enforced on (test_id, student_email), not here.
type MagicLink struct{ ent.Schema }

func (MagicLink) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "magic_links"},
	}
}

func (MagicLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("test_id", uuid.UUID{}),
		field.String("token").NotEmpty().Unique(),
		field.Time("expires_at").Optional().Nillable(),
		field.Bool("used").Default(false),
		field.Time("used_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (MagicLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", Test.Type).
			Ref("magic_links").
			Field("test_id").
			Required().
			Unique(),
	}
}

func (MagicLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token").Unique(),
	}
}
