// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// DataSource is the predicate function for datasource builders.
type DataSource func(*sql.Selector)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// StateAggregation is the predicate function for stateaggregation builders.
type StateAggregation func(*sql.Selector)
