// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// MagicLink is the predicate function for magiclink builders.
type MagicLink func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// Test is the predicate function for test builders.
type Test func(*sql.Selector)

// TestPaper is the predicate function for testpaper builders.
type TestPaper func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
