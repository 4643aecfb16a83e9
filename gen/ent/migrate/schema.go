// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "teacher_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeUUID},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "courses_organizations_courses",
				Columns:    []*schema.Column{CoursesColumns[6]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// MagicLinksColumns holds the columns for the "magic_links" table.
	MagicLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "used", Type: field.TypeBool, Default: false},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeUUID},
	}
	// MagicLinksTable holds the schema information for the "magic_links" table.
	MagicLinksTable = &schema.Table{
		Name:       "magic_links",
		Columns:    MagicLinksColumns,
		PrimaryKey: []*schema.Column{MagicLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "magic_links_tests_magic_links",
				Columns:    []*schema.Column{MagicLinksColumns[6]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "magiclink_token",
				Unique:  true,
				Columns: []*schema.Column{MagicLinksColumns[1]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "magic_link_id", Type: field.TypeUUID, Nullable: true},
		{Name: "student_name", Type: field.TypeString},
		{Name: "student_email", Type: field.TypeString},
		{Name: "image_urls", Type: field.TypeJSON},
		{Name: "merged_image_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "processing_status", Type: field.TypeString, Default: "pending"},
		{Name: "ai_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "final_score", Type: field.TypeInt, Nullable: true},
		{Name: "audio_url", Type: field.TypeString, Nullable: true},
		{Name: "audio_error", Type: field.TypeString, Nullable: true},
		{Name: "submitted_by", Type: field.TypeString, Default: "student"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "test_id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeUUID, Nullable: true},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_organizations_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[15]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_tests_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[16]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_users_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_test_id_student_email",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[16], SubmissionsColumns[3]},
			},
			{
				Name:    "submission_organization_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[15]},
			},
		},
	}
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "teacher_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "test_test_paper", Type: field.TypeUUID, Nullable: true},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tests_courses_tests",
				Columns:    []*schema.Column{TestsColumns[5]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tests_organizations_tests",
				Columns:    []*schema.Column{TestsColumns[6]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tests_test_papers_test_paper",
				Columns:    []*schema.Column{TestsColumns[7]},
				RefColumns: []*schema.Column{TestPapersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// TestPapersColumns holds the columns for the "test_papers" table.
	TestPapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestPapersTable holds the schema information for the "test_papers" table.
	TestPapersTable = &schema.Table{
		Name:       "test_papers",
		Columns:    TestPapersColumns,
		PrimaryKey: []*schema.Column{TestPapersColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "student"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeUUID},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_organizations_users",
				Columns:    []*schema.Column{UsersColumns[6]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoursesTable,
		MagicLinksTable,
		OrganizationsTable,
		SubmissionsTable,
		TestsTable,
		TestPapersTable,
		UsersTable,
	}
)

func init() {
	CoursesTable.ForeignKeys[0].RefTable = OrganizationsTable
	CoursesTable.Annotation = &entsql.Annotation{
		Table: "courses",
	}
	MagicLinksTable.ForeignKeys[0].RefTable = TestsTable
	MagicLinksTable.Annotation = &entsql.Annotation{
		Table: "magic_links",
	}
	OrganizationsTable.Annotation = &entsql.Annotation{
		Table: "organizations",
	}
	SubmissionsTable.ForeignKeys[0].RefTable = OrganizationsTable
	SubmissionsTable.ForeignKeys[1].RefTable = TestsTable
	SubmissionsTable.ForeignKeys[2].RefTable = UsersTable
	SubmissionsTable.Annotation = &entsql.Annotation{
		Table: "submissions",
	}
	TestsTable.ForeignKeys[0].RefTable = CoursesTable
	TestsTable.ForeignKeys[1].RefTable = OrganizationsTable
	TestsTable.ForeignKeys[2].RefTable = TestPapersTable
	TestsTable.Annotation = &entsql.Annotation{
		Table: "tests",
	}
	TestPapersTable.Annotation = &entsql.Annotation{
		Table: "test_papers",
	}
	UsersTable.ForeignKeys[0].RefTable = OrganizationsTable
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
