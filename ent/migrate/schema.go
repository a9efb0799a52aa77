// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PackagesColumns holds the columns for the "packages" table.
	PackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "price_per_credit", Type: field.TypeFloat64},
		{Name: "number_of_credits", Type: field.TypeInt},
		{Name: "package_type", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PackagesTable holds the schema information for the "packages" table.
	PackagesTable = &schema.Table{
		Name:       "packages",
		Columns:    PackagesColumns,
		PrimaryKey: []*schema.Column{PackagesColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Active", "Closed", "Archived"}, Default: "Active"},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employer_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_users_jobsAsEmployer",
				Columns:    []*schema.Column{JobsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// JobApplicationsColumns holds the columns for the "job_applications" table.
	JobApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "outcome", Type: field.TypeInt, Default: 0},
		{Name: "candidate_name", Type: field.TypeString},
		{Name: "candidate_email", Type: field.TypeString},
		{Name: "candidate_country", Type: field.TypeString, Nullable: true},
		{Name: "candidate_timezone", Type: field.TypeString, Nullable: true},
		{Name: "candidate_contact", Type: field.TypeString, Nullable: true},
		{Name: "cv_key", Type: field.TypeString, Nullable: true},
		{Name: "cover_letter_key", Type: field.TypeString, Nullable: true},
		{Name: "about_video_key", Type: field.TypeString, Nullable: true},
		{Name: "contract_key", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "candidate_id", Type: field.TypeUUID},
	}
	// JobApplicationsTable holds the schema information for the "job_applications" table.
	JobApplicationsTable = &schema.Table{
		Name:       "job_applications",
		Columns:    JobApplicationsColumns,
		PrimaryKey: []*schema.Column{JobApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_applications_jobs_applications",
				Columns:    []*schema.Column{JobApplicationsColumns[16]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "job_applications_users_applicationsAsCandidate",
				Columns:    []*schema.Column{JobApplicationsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobapplication_job_id_candidate_id",
				Unique:  true,
				Columns: []*schema.Column{JobApplicationsColumns[16], JobApplicationsColumns[17]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
		},
	}
	// SubmittedTestsColumns holds the columns for the "submitted_tests" table.
	SubmittedTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "candidate_id", Type: field.TypeUUID},
		{Name: "video_key", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID, Unique: true},
	}
	// SubmittedTestsTable holds the schema information for the "submitted_tests" table.
	SubmittedTestsTable = &schema.Table{
		Name:       "submitted_tests",
		Columns:    SubmittedTestsColumns,
		PrimaryKey: []*schema.Column{SubmittedTestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submitted_tests_job_applications_submitted_test",
				Columns:    []*schema.Column{SubmittedTestsColumns[6]},
				RefColumns: []*schema.Column{JobApplicationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "package_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "price_per_credit", Type: field.TypeFloat64},
		{Name: "credit_allowance", Type: field.TypeInt},
		{Name: "package_type", Type: field.TypeInt},
		{Name: "credits", Type: field.TypeInt},
		{Name: "admin_credits_added", Type: field.TypeInt, Default: 0},
		{Name: "admin_credits_removed", Type: field.TypeInt, Default: 0},
		{Name: "transaction_id", Type: field.TypeString},
		{Name: "granted_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employer_id", Type: field.TypeUUID, Unique: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscription",
				Columns:    []*schema.Column{SubscriptionsColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SubscriptionHistoryColumns holds the columns for the "subscription_history" table.
	SubscriptionHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "snapshot", Type: field.TypeJSON},
		{Name: "archived_at", Type: field.TypeTime},
		{Name: "subscription_id", Type: field.TypeUUID},
	}
	// SubscriptionHistoryTable holds the schema information for the "subscription_history" table.
	SubscriptionHistoryTable = &schema.Table{
		Name:       "subscription_history",
		Columns:    SubscriptionHistoryColumns,
		PrimaryKey: []*schema.Column{SubscriptionHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscription_history_subscriptions_history",
				Columns:    []*schema.Column{SubscriptionHistoryColumns[3]},
				RefColumns: []*schema.Column{SubscriptionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Size: 2147483647},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"candidate", "employer", "admin"}, Default: "candidate"},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "contact", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PackagesTable,
		JobsTable,
		JobApplicationsTable,
		SubmittedTestsTable,
		SubscriptionsTable,
		SubscriptionHistoryTable,
		UsersTable,
	}
)

func init() {
	PackagesTable.Annotation = &entsql.Annotation{
		Table: "packages",
	}
	JobsTable.ForeignKeys[0].RefTable = UsersTable
	JobApplicationsTable.ForeignKeys[0].RefTable = JobsTable
	JobApplicationsTable.ForeignKeys[1].RefTable = UsersTable
	JobApplicationsTable.Annotation = &entsql.Annotation{
		Table: "job_applications",
	}
	SubmittedTestsTable.ForeignKeys[0].RefTable = JobApplicationsTable
	SubmittedTestsTable.Annotation = &entsql.Annotation{
		Table: "submitted_tests",
	}
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
	SubscriptionsTable.Annotation = &entsql.Annotation{
		Table: "subscriptions",
	}
	SubscriptionHistoryTable.ForeignKeys[0].RefTable = SubscriptionsTable
	SubscriptionHistoryTable.Annotation = &entsql.Annotation{
		Table: "subscription_history",
	}
}
