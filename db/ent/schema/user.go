package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/db/ent/schema/utils"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("organization_id", uuid.UUID{}),
		field.String("email").NotEmpty().Unique(),
		field.String("name").NotEmpty(),
		field.String("role").
			Default(string(constants.RoleStudent)).
			Validate(utils.EnumValidator(constants.UserRoles...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY users -> ONE organization (FK: users.organization_id)
		edge.From("organization", Organization.Type).
			Ref("users").
			Field("organization_id").
			Required().
			Unique(),
		edge.To("submissions", Submission.Type),
	}
}
