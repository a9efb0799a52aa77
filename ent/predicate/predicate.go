// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CreditPackage is the predicate function for creditpackage builders.
type CreditPackage func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobApplication is the predicate function for jobapplication builders.
type JobApplication func(*sql.Selector)

// SubmittedTest is the predicate function for submittedtest builders.
type SubmittedTest func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// SubscriptionHistory is the predicate function for subscriptionhistory builders.
type SubscriptionHistory func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
