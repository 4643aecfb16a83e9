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
	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/db/ent/schema/utils"
)

type Submission struct{ ent.Schema }

func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submissions"},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("test_id", uuid.UUID{}),
		field.UUID("organization_id", uuid.UUID{}),
		field.UUID("student_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("magic_link_id", uuid.UUID{}).Optional().Nillable(),
		field.String("student_name").NotEmpty(),
		field.String("student_email").NotEmpty(),
		field.JSON("image_urls", []string{}),
		field.String("merged_image_url").Optional().Nillable(),
		field.String("status").
			Default(string(constants.SubmissionPending)).
			Validate(utils.EnumValidator(constants.SubmissionStatuses...)),
		field.String("processing_status").
			Default(string(constants.ProcessingPending)).
			Validate(utils.EnumValidator(constants.ProcessingStatuses...)),
		field.Text("ai_feedback").Optional().Nillable(),
		field.Int("final_score").Optional().Nillable().
			Min(0).Max(100),
		field.String("audio_url").Optional().Nillable(),
		field.String("audio_error").Optional().Nillable(),
		field.String("submitted_by").
			Default(string(constants.SubmittedByStudent)).
			Validate(utils.EnumValidator(constants.SubmittedByValues...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", Test.Type).
			Ref("submissions").
			Field("test_id").
			Required().
			Unique(),
		edge.From("organization", Organization.Type).
			Ref("submissions").
			Field("organization_id").
			Required().
			Unique(),
		edge.From("student", User.Type).
			Ref("submissions").
			Field("student_id").
			Unique(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		// The dedup lookup path; not unique, because teacher overrides
		// replace the row in place rather than inserting a second one.
		index.Fields("test_id", "student_email"),
		index.Fields("organization_id"),
	}
}
