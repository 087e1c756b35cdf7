// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/auditlog"
	"heatwatch.io/heatwatch/ent/claim"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/predicate"
	"heatwatch.io/heatwatch/ent/stateaggregation"
	"heatwatch.io/heatwatch/internal/domain"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog         = "AuditLog"
	TypeClaim            = "Claim"
	TypeDataSource       = "DataSource"
	TypeDeadLetter       = "DeadLetter"
	TypeEvent            = "Event"
	TypeStateAggregation = "StateAggregation"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	action        *string
	resource_type *string
	resource_id   *string
	actor         *string
	details       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// ClaimMutation represents an operation that mutates the Claim nodes in the graph.
type ClaimMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	created_at                 *time.Time
	updated_at                 *time.Time
	fingerprint                *string
	first_seen_at              *time.Time
	first_seen_event_id        *string
	last_seen_at               *time.Time
	occurrence_count           *int64
	addoccurrence_count        *int64
	distinct_locations         *[]string
	appenddistinct_locations   []string
	spread_velocity            *float64
	addspread_velocity         *float64
	geographic_spread_score    *float64
	addgeographic_spread_score *float64
	overall_risk_score         *float64
	addoverall_risk_score      *float64
	archived_at                *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Claim, error)
	predicates                 []predicate.Claim
}

var _ ent.Mutation = (*ClaimMutation)(nil)

// claimOption allows management of the mutation configuration using functional options.
type claimOption func(*ClaimMutation)

// newClaimMutation creates new mutation for the Claim entity.
func newClaimMutation(c config, op Op, opts ...claimOption) *ClaimMutation {
	m := &ClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimID sets the ID field of the mutation.
func withClaimID(id string) claimOption {
	return func(m *ClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *Claim
		)
		m.oldValue = func(ctx context.Context) (*Claim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Claim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaim sets the old Claim of the mutation.
func withClaim(node *Claim) claimOption {
	return func(m *ClaimMutation) {
		m.oldValue = func(context.Context) (*Claim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Claim entities.
func (m *ClaimMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Claim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *ClaimMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *ClaimMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *ClaimMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ClaimMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ClaimMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ClaimMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetFirstSeenEventID sets the "first_seen_event_id" field.
func (m *ClaimMutation) SetFirstSeenEventID(s string) {
	m.first_seen_event_id = &s
}

// FirstSeenEventID returns the value of the "first_seen_event_id" field in the mutation.
func (m *ClaimMutation) FirstSeenEventID() (r string, exists bool) {
	v := m.first_seen_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenEventID returns the old "first_seen_event_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldFirstSeenEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenEventID: %w", err)
	}
	return oldValue.FirstSeenEventID, nil
}

// ResetFirstSeenEventID resets all changes to the "first_seen_event_id" field.
func (m *ClaimMutation) ResetFirstSeenEventID() {
	m.first_seen_event_id = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *ClaimMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *ClaimMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *ClaimMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (m *ClaimMutation) SetOccurrenceCount(i int64) {
	m.occurrence_count = &i
	m.addoccurrence_count = nil
}

// OccurrenceCount returns the value of the "occurrence_count" field in the mutation.
func (m *ClaimMutation) OccurrenceCount() (r int64, exists bool) {
	v := m.occurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrenceCount returns the old "occurrence_count" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldOccurrenceCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrenceCount: %w", err)
	}
	return oldValue.OccurrenceCount, nil
}

// AddOccurrenceCount adds i to the "occurrence_count" field.
func (m *ClaimMutation) AddOccurrenceCount(i int64) {
	if m.addoccurrence_count != nil {
		*m.addoccurrence_count += i
	} else {
		m.addoccurrence_count = &i
	}
}

// AddedOccurrenceCount returns the value that was added to the "occurrence_count" field in this mutation.
func (m *ClaimMutation) AddedOccurrenceCount() (r int64, exists bool) {
	v := m.addoccurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrenceCount resets all changes to the "occurrence_count" field.
func (m *ClaimMutation) ResetOccurrenceCount() {
	m.occurrence_count = nil
	m.addoccurrence_count = nil
}

// SetDistinctLocations sets the "distinct_locations" field.
func (m *ClaimMutation) SetDistinctLocations(s []string) {
	m.distinct_locations = &s
	m.appenddistinct_locations = nil
}

// DistinctLocations returns the value of the "distinct_locations" field in the mutation.
func (m *ClaimMutation) DistinctLocations() (r []string, exists bool) {
	v := m.distinct_locations
	if v == nil {
		return
	}
	return *v, true
}

// OldDistinctLocations returns the old "distinct_locations" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldDistinctLocations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistinctLocations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistinctLocations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistinctLocations: %w", err)
	}
	return oldValue.DistinctLocations, nil
}

// AppendDistinctLocations adds s to the "distinct_locations" field.
func (m *ClaimMutation) AppendDistinctLocations(s []string) {
	m.appenddistinct_locations = append(m.appenddistinct_locations, s...)
}

// AppendedDistinctLocations returns the list of values that were appended to the "distinct_locations" field in this mutation.
func (m *ClaimMutation) AppendedDistinctLocations() ([]string, bool) {
	if len(m.appenddistinct_locations) == 0 {
		return nil, false
	}
	return m.appenddistinct_locations, true
}

// ClearDistinctLocations clears the value of the "distinct_locations" field.
func (m *ClaimMutation) ClearDistinctLocations() {
	m.distinct_locations = nil
	m.appenddistinct_locations = nil
	m.clearedFields[claim.FieldDistinctLocations] = struct{}{}
}

// DistinctLocationsCleared returns if the "distinct_locations" field was cleared in this mutation.
func (m *ClaimMutation) DistinctLocationsCleared() bool {
	_, ok := m.clearedFields[claim.FieldDistinctLocations]
	return ok
}

// ResetDistinctLocations resets all changes to the "distinct_locations" field.
func (m *ClaimMutation) ResetDistinctLocations() {
	m.distinct_locations = nil
	m.appenddistinct_locations = nil
	delete(m.clearedFields, claim.FieldDistinctLocations)
}

// SetSpreadVelocity sets the "spread_velocity" field.
func (m *ClaimMutation) SetSpreadVelocity(f float64) {
	m.spread_velocity = &f
	m.addspread_velocity = nil
}

// SpreadVelocity returns the value of the "spread_velocity" field in the mutation.
func (m *ClaimMutation) SpreadVelocity() (r float64, exists bool) {
	v := m.spread_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldSpreadVelocity returns the old "spread_velocity" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldSpreadVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpreadVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpreadVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpreadVelocity: %w", err)
	}
	return oldValue.SpreadVelocity, nil
}

// AddSpreadVelocity adds f to the "spread_velocity" field.
func (m *ClaimMutation) AddSpreadVelocity(f float64) {
	if m.addspread_velocity != nil {
		*m.addspread_velocity += f
	} else {
		m.addspread_velocity = &f
	}
}

// AddedSpreadVelocity returns the value that was added to the "spread_velocity" field in this mutation.
func (m *ClaimMutation) AddedSpreadVelocity() (r float64, exists bool) {
	v := m.addspread_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpreadVelocity resets all changes to the "spread_velocity" field.
func (m *ClaimMutation) ResetSpreadVelocity() {
	m.spread_velocity = nil
	m.addspread_velocity = nil
}

// SetGeographicSpreadScore sets the "geographic_spread_score" field.
func (m *ClaimMutation) SetGeographicSpreadScore(f float64) {
	m.geographic_spread_score = &f
	m.addgeographic_spread_score = nil
}

// GeographicSpreadScore returns the value of the "geographic_spread_score" field in the mutation.
func (m *ClaimMutation) GeographicSpreadScore() (r float64, exists bool) {
	v := m.geographic_spread_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGeographicSpreadScore returns the old "geographic_spread_score" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldGeographicSpreadScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeographicSpreadScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeographicSpreadScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeographicSpreadScore: %w", err)
	}
	return oldValue.GeographicSpreadScore, nil
}

// AddGeographicSpreadScore adds f to the "geographic_spread_score" field.
func (m *ClaimMutation) AddGeographicSpreadScore(f float64) {
	if m.addgeographic_spread_score != nil {
		*m.addgeographic_spread_score += f
	} else {
		m.addgeographic_spread_score = &f
	}
}

// AddedGeographicSpreadScore returns the value that was added to the "geographic_spread_score" field in this mutation.
func (m *ClaimMutation) AddedGeographicSpreadScore() (r float64, exists bool) {
	v := m.addgeographic_spread_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeographicSpreadScore resets all changes to the "geographic_spread_score" field.
func (m *ClaimMutation) ResetGeographicSpreadScore() {
	m.geographic_spread_score = nil
	m.addgeographic_spread_score = nil
}

// SetOverallRiskScore sets the "overall_risk_score" field.
func (m *ClaimMutation) SetOverallRiskScore(f float64) {
	m.overall_risk_score = &f
	m.addoverall_risk_score = nil
}

// OverallRiskScore returns the value of the "overall_risk_score" field in the mutation.
func (m *ClaimMutation) OverallRiskScore() (r float64, exists bool) {
	v := m.overall_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallRiskScore returns the old "overall_risk_score" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldOverallRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallRiskScore: %w", err)
	}
	return oldValue.OverallRiskScore, nil
}

// AddOverallRiskScore adds f to the "overall_risk_score" field.
func (m *ClaimMutation) AddOverallRiskScore(f float64) {
	if m.addoverall_risk_score != nil {
		*m.addoverall_risk_score += f
	} else {
		m.addoverall_risk_score = &f
	}
}

// AddedOverallRiskScore returns the value that was added to the "overall_risk_score" field in this mutation.
func (m *ClaimMutation) AddedOverallRiskScore() (r float64, exists bool) {
	v := m.addoverall_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallRiskScore resets all changes to the "overall_risk_score" field.
func (m *ClaimMutation) ResetOverallRiskScore() {
	m.overall_risk_score = nil
	m.addoverall_risk_score = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *ClaimMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *ClaimMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *ClaimMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[claim.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *ClaimMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[claim.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *ClaimMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, claim.FieldArchivedAt)
}

// Where appends a list predicates to the ClaimMutation builder.
func (m *ClaimMutation) Where(ps ...predicate.Claim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Claim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Claim).
func (m *ClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, claim.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claim.FieldUpdatedAt)
	}
	if m.fingerprint != nil {
		fields = append(fields, claim.FieldFingerprint)
	}
	if m.first_seen_at != nil {
		fields = append(fields, claim.FieldFirstSeenAt)
	}
	if m.first_seen_event_id != nil {
		fields = append(fields, claim.FieldFirstSeenEventID)
	}
	if m.last_seen_at != nil {
		fields = append(fields, claim.FieldLastSeenAt)
	}
	if m.occurrence_count != nil {
		fields = append(fields, claim.FieldOccurrenceCount)
	}
	if m.distinct_locations != nil {
		fields = append(fields, claim.FieldDistinctLocations)
	}
	if m.spread_velocity != nil {
		fields = append(fields, claim.FieldSpreadVelocity)
	}
	if m.geographic_spread_score != nil {
		fields = append(fields, claim.FieldGeographicSpreadScore)
	}
	if m.overall_risk_score != nil {
		fields = append(fields, claim.FieldOverallRiskScore)
	}
	if m.archived_at != nil {
		fields = append(fields, claim.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldCreatedAt:
		return m.CreatedAt()
	case claim.FieldUpdatedAt:
		return m.UpdatedAt()
	case claim.FieldFingerprint:
		return m.Fingerprint()
	case claim.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case claim.FieldFirstSeenEventID:
		return m.FirstSeenEventID()
	case claim.FieldLastSeenAt:
		return m.LastSeenAt()
	case claim.FieldOccurrenceCount:
		return m.OccurrenceCount()
	case claim.FieldDistinctLocations:
		return m.DistinctLocations()
	case claim.FieldSpreadVelocity:
		return m.SpreadVelocity()
	case claim.FieldGeographicSpreadScore:
		return m.GeographicSpreadScore()
	case claim.FieldOverallRiskScore:
		return m.OverallRiskScore()
	case claim.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claim.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case claim.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case claim.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case claim.FieldFirstSeenEventID:
		return m.OldFirstSeenEventID(ctx)
	case claim.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case claim.FieldOccurrenceCount:
		return m.OldOccurrenceCount(ctx)
	case claim.FieldDistinctLocations:
		return m.OldDistinctLocations(ctx)
	case claim.FieldSpreadVelocity:
		return m.OldSpreadVelocity(ctx)
	case claim.FieldGeographicSpreadScore:
		return m.OldGeographicSpreadScore(ctx)
	case claim.FieldOverallRiskScore:
		return m.OldOverallRiskScore(ctx)
	case claim.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Claim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claim.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case claim.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case claim.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case claim.FieldFirstSeenEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenEventID(v)
		return nil
	case claim.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case claim.FieldOccurrenceCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrenceCount(v)
		return nil
	case claim.FieldDistinctLocations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistinctLocations(v)
		return nil
	case claim.FieldSpreadVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpreadVelocity(v)
		return nil
	case claim.FieldGeographicSpreadScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeographicSpreadScore(v)
		return nil
	case claim.FieldOverallRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallRiskScore(v)
		return nil
	case claim.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrence_count != nil {
		fields = append(fields, claim.FieldOccurrenceCount)
	}
	if m.addspread_velocity != nil {
		fields = append(fields, claim.FieldSpreadVelocity)
	}
	if m.addgeographic_spread_score != nil {
		fields = append(fields, claim.FieldGeographicSpreadScore)
	}
	if m.addoverall_risk_score != nil {
		fields = append(fields, claim.FieldOverallRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldOccurrenceCount:
		return m.AddedOccurrenceCount()
	case claim.FieldSpreadVelocity:
		return m.AddedSpreadVelocity()
	case claim.FieldGeographicSpreadScore:
		return m.AddedGeographicSpreadScore()
	case claim.FieldOverallRiskScore:
		return m.AddedOverallRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claim.FieldOccurrenceCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrenceCount(v)
		return nil
	case claim.FieldSpreadVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpreadVelocity(v)
		return nil
	case claim.FieldGeographicSpreadScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeographicSpreadScore(v)
		return nil
	case claim.FieldOverallRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown Claim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claim.FieldDistinctLocations) {
		fields = append(fields, claim.FieldDistinctLocations)
	}
	if m.FieldCleared(claim.FieldArchivedAt) {
		fields = append(fields, claim.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimMutation) ClearField(name string) error {
	switch name {
	case claim.FieldDistinctLocations:
		m.ClearDistinctLocations()
		return nil
	case claim.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Claim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimMutation) ResetField(name string) error {
	switch name {
	case claim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claim.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case claim.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case claim.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case claim.FieldFirstSeenEventID:
		m.ResetFirstSeenEventID()
		return nil
	case claim.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case claim.FieldOccurrenceCount:
		m.ResetOccurrenceCount()
		return nil
	case claim.FieldDistinctLocations:
		m.ResetDistinctLocations()
		return nil
	case claim.FieldSpreadVelocity:
		m.ResetSpreadVelocity()
		return nil
	case claim.FieldGeographicSpreadScore:
		m.ResetGeographicSpreadScore()
		return nil
	case claim.FieldOverallRiskScore:
		m.ResetOverallRiskScore()
		return nil
	case claim.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Claim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Claim edge %s", name)
}

// DataSourceMutation represents an operation that mutates the DataSource nodes in the graph.
type DataSourceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	name                  *string
	source_type           *datasource.SourceType
	status                *datasource.Status
	endpoint              *string
	fetch_count           *int64
	addfetch_count        *int64
	error_count           *int64
	adderror_count        *int64
	consecutive_errors    *int
	addconsecutive_errors *int
	last_success_at       *time.Time
	last_error            *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DataSource, error)
	predicates            []predicate.DataSource
}

var _ ent.Mutation = (*DataSourceMutation)(nil)

// datasourceOption allows management of the mutation configuration using functional options.
type datasourceOption func(*DataSourceMutation)

// newDataSourceMutation creates new mutation for the DataSource entity.
func newDataSourceMutation(c config, op Op, opts ...datasourceOption) *DataSourceMutation {
	m := &DataSourceMutation{
		config:        c,
		op:            op,
		typ:           TypeDataSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataSourceID sets the ID field of the mutation.
func withDataSourceID(id string) datasourceOption {
	return func(m *DataSourceMutation) {
		var (
			err   error
			once  sync.Once
			value *DataSource
		)
		m.oldValue = func(ctx context.Context) (*DataSource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataSource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataSource sets the old DataSource of the mutation.
func withDataSource(node *DataSource) datasourceOption {
	return func(m *DataSourceMutation) {
		m.oldValue = func(context.Context) (*DataSource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataSourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataSourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataSource entities.
func (m *DataSourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataSourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataSourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataSource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DataSourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DataSourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DataSourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DataSourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DataSourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DataSourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DataSourceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DataSourceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DataSourceMutation) ResetName() {
	m.name = nil
}

// SetSourceType sets the "source_type" field.
func (m *DataSourceMutation) SetSourceType(dt datasource.SourceType) {
	m.source_type = &dt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DataSourceMutation) SourceType() (r datasource.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldSourceType(ctx context.Context) (v datasource.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DataSourceMutation) ResetSourceType() {
	m.source_type = nil
}

// SetStatus sets the "status" field.
func (m *DataSourceMutation) SetStatus(d datasource.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DataSourceMutation) Status() (r datasource.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldStatus(ctx context.Context) (v datasource.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DataSourceMutation) ResetStatus() {
	m.status = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *DataSourceMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *DataSourceMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ClearEndpoint clears the value of the "endpoint" field.
func (m *DataSourceMutation) ClearEndpoint() {
	m.endpoint = nil
	m.clearedFields[datasource.FieldEndpoint] = struct{}{}
}

// EndpointCleared returns if the "endpoint" field was cleared in this mutation.
func (m *DataSourceMutation) EndpointCleared() bool {
	_, ok := m.clearedFields[datasource.FieldEndpoint]
	return ok
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *DataSourceMutation) ResetEndpoint() {
	m.endpoint = nil
	delete(m.clearedFields, datasource.FieldEndpoint)
}

// SetFetchCount sets the "fetch_count" field.
func (m *DataSourceMutation) SetFetchCount(i int64) {
	m.fetch_count = &i
	m.addfetch_count = nil
}

// FetchCount returns the value of the "fetch_count" field in the mutation.
func (m *DataSourceMutation) FetchCount() (r int64, exists bool) {
	v := m.fetch_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchCount returns the old "fetch_count" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldFetchCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchCount: %w", err)
	}
	return oldValue.FetchCount, nil
}

// AddFetchCount adds i to the "fetch_count" field.
func (m *DataSourceMutation) AddFetchCount(i int64) {
	if m.addfetch_count != nil {
		*m.addfetch_count += i
	} else {
		m.addfetch_count = &i
	}
}

// AddedFetchCount returns the value that was added to the "fetch_count" field in this mutation.
func (m *DataSourceMutation) AddedFetchCount() (r int64, exists bool) {
	v := m.addfetch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFetchCount resets all changes to the "fetch_count" field.
func (m *DataSourceMutation) ResetFetchCount() {
	m.fetch_count = nil
	m.addfetch_count = nil
}

// SetErrorCount sets the "error_count" field.
func (m *DataSourceMutation) SetErrorCount(i int64) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *DataSourceMutation) ErrorCount() (r int64, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldErrorCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *DataSourceMutation) AddErrorCount(i int64) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *DataSourceMutation) AddedErrorCount() (r int64, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *DataSourceMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (m *DataSourceMutation) SetConsecutiveErrors(i int) {
	m.consecutive_errors = &i
	m.addconsecutive_errors = nil
}

// ConsecutiveErrors returns the value of the "consecutive_errors" field in the mutation.
func (m *DataSourceMutation) ConsecutiveErrors() (r int, exists bool) {
	v := m.consecutive_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveErrors returns the old "consecutive_errors" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldConsecutiveErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveErrors: %w", err)
	}
	return oldValue.ConsecutiveErrors, nil
}

// AddConsecutiveErrors adds i to the "consecutive_errors" field.
func (m *DataSourceMutation) AddConsecutiveErrors(i int) {
	if m.addconsecutive_errors != nil {
		*m.addconsecutive_errors += i
	} else {
		m.addconsecutive_errors = &i
	}
}

// AddedConsecutiveErrors returns the value that was added to the "consecutive_errors" field in this mutation.
func (m *DataSourceMutation) AddedConsecutiveErrors() (r int, exists bool) {
	v := m.addconsecutive_errors
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveErrors resets all changes to the "consecutive_errors" field.
func (m *DataSourceMutation) ResetConsecutiveErrors() {
	m.consecutive_errors = nil
	m.addconsecutive_errors = nil
}

// SetLastSuccessAt sets the "last_success_at" field.
func (m *DataSourceMutation) SetLastSuccessAt(t time.Time) {
	m.last_success_at = &t
}

// LastSuccessAt returns the value of the "last_success_at" field in the mutation.
func (m *DataSourceMutation) LastSuccessAt() (r time.Time, exists bool) {
	v := m.last_success_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSuccessAt returns the old "last_success_at" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldLastSuccessAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSuccessAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSuccessAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSuccessAt: %w", err)
	}
	return oldValue.LastSuccessAt, nil
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (m *DataSourceMutation) ClearLastSuccessAt() {
	m.last_success_at = nil
	m.clearedFields[datasource.FieldLastSuccessAt] = struct{}{}
}

// LastSuccessAtCleared returns if the "last_success_at" field was cleared in this mutation.
func (m *DataSourceMutation) LastSuccessAtCleared() bool {
	_, ok := m.clearedFields[datasource.FieldLastSuccessAt]
	return ok
}

// ResetLastSuccessAt resets all changes to the "last_success_at" field.
func (m *DataSourceMutation) ResetLastSuccessAt() {
	m.last_success_at = nil
	delete(m.clearedFields, datasource.FieldLastSuccessAt)
}

// SetLastError sets the "last_error" field.
func (m *DataSourceMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *DataSourceMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *DataSourceMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[datasource.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *DataSourceMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[datasource.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *DataSourceMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, datasource.FieldLastError)
}

// Where appends a list predicates to the DataSourceMutation builder.
func (m *DataSourceMutation) Where(ps ...predicate.DataSource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataSourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataSourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataSource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataSourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataSourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataSource).
func (m *DataSourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataSourceMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, datasource.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, datasource.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, datasource.FieldName)
	}
	if m.source_type != nil {
		fields = append(fields, datasource.FieldSourceType)
	}
	if m.status != nil {
		fields = append(fields, datasource.FieldStatus)
	}
	if m.endpoint != nil {
		fields = append(fields, datasource.FieldEndpoint)
	}
	if m.fetch_count != nil {
		fields = append(fields, datasource.FieldFetchCount)
	}
	if m.error_count != nil {
		fields = append(fields, datasource.FieldErrorCount)
	}
	if m.consecutive_errors != nil {
		fields = append(fields, datasource.FieldConsecutiveErrors)
	}
	if m.last_success_at != nil {
		fields = append(fields, datasource.FieldLastSuccessAt)
	}
	if m.last_error != nil {
		fields = append(fields, datasource.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataSourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datasource.FieldCreatedAt:
		return m.CreatedAt()
	case datasource.FieldUpdatedAt:
		return m.UpdatedAt()
	case datasource.FieldName:
		return m.Name()
	case datasource.FieldSourceType:
		return m.SourceType()
	case datasource.FieldStatus:
		return m.Status()
	case datasource.FieldEndpoint:
		return m.Endpoint()
	case datasource.FieldFetchCount:
		return m.FetchCount()
	case datasource.FieldErrorCount:
		return m.ErrorCount()
	case datasource.FieldConsecutiveErrors:
		return m.ConsecutiveErrors()
	case datasource.FieldLastSuccessAt:
		return m.LastSuccessAt()
	case datasource.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataSourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datasource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case datasource.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case datasource.FieldName:
		return m.OldName(ctx)
	case datasource.FieldSourceType:
		return m.OldSourceType(ctx)
	case datasource.FieldStatus:
		return m.OldStatus(ctx)
	case datasource.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case datasource.FieldFetchCount:
		return m.OldFetchCount(ctx)
	case datasource.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case datasource.FieldConsecutiveErrors:
		return m.OldConsecutiveErrors(ctx)
	case datasource.FieldLastSuccessAt:
		return m.OldLastSuccessAt(ctx)
	case datasource.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown DataSource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataSourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datasource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case datasource.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case datasource.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case datasource.FieldSourceType:
		v, ok := value.(datasource.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case datasource.FieldStatus:
		v, ok := value.(datasource.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case datasource.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case datasource.FieldFetchCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchCount(v)
		return nil
	case datasource.FieldErrorCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case datasource.FieldConsecutiveErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveErrors(v)
		return nil
	case datasource.FieldLastSuccessAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSuccessAt(v)
		return nil
	case datasource.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown DataSource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataSourceMutation) AddedFields() []string {
	var fields []string
	if m.addfetch_count != nil {
		fields = append(fields, datasource.FieldFetchCount)
	}
	if m.adderror_count != nil {
		fields = append(fields, datasource.FieldErrorCount)
	}
	if m.addconsecutive_errors != nil {
		fields = append(fields, datasource.FieldConsecutiveErrors)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataSourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datasource.FieldFetchCount:
		return m.AddedFetchCount()
	case datasource.FieldErrorCount:
		return m.AddedErrorCount()
	case datasource.FieldConsecutiveErrors:
		return m.AddedConsecutiveErrors()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataSourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datasource.FieldFetchCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFetchCount(v)
		return nil
	case datasource.FieldErrorCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case datasource.FieldConsecutiveErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveErrors(v)
		return nil
	}
	return fmt.Errorf("unknown DataSource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataSourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(datasource.FieldEndpoint) {
		fields = append(fields, datasource.FieldEndpoint)
	}
	if m.FieldCleared(datasource.FieldLastSuccessAt) {
		fields = append(fields, datasource.FieldLastSuccessAt)
	}
	if m.FieldCleared(datasource.FieldLastError) {
		fields = append(fields, datasource.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataSourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataSourceMutation) ClearField(name string) error {
	switch name {
	case datasource.FieldEndpoint:
		m.ClearEndpoint()
		return nil
	case datasource.FieldLastSuccessAt:
		m.ClearLastSuccessAt()
		return nil
	case datasource.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown DataSource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataSourceMutation) ResetField(name string) error {
	switch name {
	case datasource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case datasource.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case datasource.FieldName:
		m.ResetName()
		return nil
	case datasource.FieldSourceType:
		m.ResetSourceType()
		return nil
	case datasource.FieldStatus:
		m.ResetStatus()
		return nil
	case datasource.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case datasource.FieldFetchCount:
		m.ResetFetchCount()
		return nil
	case datasource.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case datasource.FieldConsecutiveErrors:
		m.ResetConsecutiveErrors()
		return nil
	case datasource.FieldLastSuccessAt:
		m.ResetLastSuccessAt()
		return nil
	case datasource.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown DataSource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataSourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataSourceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataSourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataSourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataSourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataSourceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataSourceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DataSource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataSourceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DataSource edge %s", name)
}

// DeadLetterMutation represents an operation that mutates the DeadLetter nodes in the graph.
type DeadLetterMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	event_id              *string
	stage                 *deadletter.Stage
	reason                *string
	message               *string
	attempt_history       *[]domain.AttemptRecord
	appendattempt_history []domain.AttemptRecord
	replayed_at           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DeadLetter, error)
	predicates            []predicate.DeadLetter
}

var _ ent.Mutation = (*DeadLetterMutation)(nil)

// deadletterOption allows management of the mutation configuration using functional options.
type deadletterOption func(*DeadLetterMutation)

// newDeadLetterMutation creates new mutation for the DeadLetter entity.
func newDeadLetterMutation(c config, op Op, opts ...deadletterOption) *DeadLetterMutation {
	m := &DeadLetterMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterID sets the ID field of the mutation.
func withDeadLetterID(id string) deadletterOption {
	return func(m *DeadLetterMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetter
		)
		m.oldValue = func(ctx context.Context) (*DeadLetter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetter sets the old DeadLetter of the mutation.
func withDeadLetter(node *DeadLetter) deadletterOption {
	return func(m *DeadLetterMutation) {
		m.oldValue = func(context.Context) (*DeadLetter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeadLetter entities.
func (m *DeadLetterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DeadLetterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeadLetterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeadLetterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEventID sets the "event_id" field.
func (m *DeadLetterMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *DeadLetterMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *DeadLetterMutation) ResetEventID() {
	m.event_id = nil
}

// SetStage sets the "stage" field.
func (m *DeadLetterMutation) SetStage(d deadletter.Stage) {
	m.stage = &d
}

// Stage returns the value of the "stage" field in the mutation.
func (m *DeadLetterMutation) Stage() (r deadletter.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldStage(ctx context.Context) (v deadletter.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *DeadLetterMutation) ResetStage() {
	m.stage = nil
}

// SetReason sets the "reason" field.
func (m *DeadLetterMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *DeadLetterMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *DeadLetterMutation) ResetReason() {
	m.reason = nil
}

// SetMessage sets the "message" field.
func (m *DeadLetterMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *DeadLetterMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *DeadLetterMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[deadletter.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *DeadLetterMutation) MessageCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *DeadLetterMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, deadletter.FieldMessage)
}

// SetAttemptHistory sets the "attempt_history" field.
func (m *DeadLetterMutation) SetAttemptHistory(dr []domain.AttemptRecord) {
	m.attempt_history = &dr
	m.appendattempt_history = nil
}

// AttemptHistory returns the value of the "attempt_history" field in the mutation.
func (m *DeadLetterMutation) AttemptHistory() (r []domain.AttemptRecord, exists bool) {
	v := m.attempt_history
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptHistory returns the old "attempt_history" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAttemptHistory(ctx context.Context) (v []domain.AttemptRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptHistory: %w", err)
	}
	return oldValue.AttemptHistory, nil
}

// AppendAttemptHistory adds dr to the "attempt_history" field.
func (m *DeadLetterMutation) AppendAttemptHistory(dr []domain.AttemptRecord) {
	m.appendattempt_history = append(m.appendattempt_history, dr...)
}

// AppendedAttemptHistory returns the list of values that were appended to the "attempt_history" field in this mutation.
func (m *DeadLetterMutation) AppendedAttemptHistory() ([]domain.AttemptRecord, bool) {
	if len(m.appendattempt_history) == 0 {
		return nil, false
	}
	return m.appendattempt_history, true
}

// ClearAttemptHistory clears the value of the "attempt_history" field.
func (m *DeadLetterMutation) ClearAttemptHistory() {
	m.attempt_history = nil
	m.appendattempt_history = nil
	m.clearedFields[deadletter.FieldAttemptHistory] = struct{}{}
}

// AttemptHistoryCleared returns if the "attempt_history" field was cleared in this mutation.
func (m *DeadLetterMutation) AttemptHistoryCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldAttemptHistory]
	return ok
}

// ResetAttemptHistory resets all changes to the "attempt_history" field.
func (m *DeadLetterMutation) ResetAttemptHistory() {
	m.attempt_history = nil
	m.appendattempt_history = nil
	delete(m.clearedFields, deadletter.FieldAttemptHistory)
}

// SetReplayedAt sets the "replayed_at" field.
func (m *DeadLetterMutation) SetReplayedAt(t time.Time) {
	m.replayed_at = &t
}

// ReplayedAt returns the value of the "replayed_at" field in the mutation.
func (m *DeadLetterMutation) ReplayedAt() (r time.Time, exists bool) {
	v := m.replayed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReplayedAt returns the old "replayed_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldReplayedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplayedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplayedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplayedAt: %w", err)
	}
	return oldValue.ReplayedAt, nil
}

// ClearReplayedAt clears the value of the "replayed_at" field.
func (m *DeadLetterMutation) ClearReplayedAt() {
	m.replayed_at = nil
	m.clearedFields[deadletter.FieldReplayedAt] = struct{}{}
}

// ReplayedAtCleared returns if the "replayed_at" field was cleared in this mutation.
func (m *DeadLetterMutation) ReplayedAtCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldReplayedAt]
	return ok
}

// ResetReplayedAt resets all changes to the "replayed_at" field.
func (m *DeadLetterMutation) ResetReplayedAt() {
	m.replayed_at = nil
	delete(m.clearedFields, deadletter.FieldReplayedAt)
}

// Where appends a list predicates to the DeadLetterMutation builder.
func (m *DeadLetterMutation) Where(ps ...predicate.DeadLetter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetter).
func (m *DeadLetterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, deadletter.FieldCreatedAt)
	}
	if m.event_id != nil {
		fields = append(fields, deadletter.FieldEventID)
	}
	if m.stage != nil {
		fields = append(fields, deadletter.FieldStage)
	}
	if m.reason != nil {
		fields = append(fields, deadletter.FieldReason)
	}
	if m.message != nil {
		fields = append(fields, deadletter.FieldMessage)
	}
	if m.attempt_history != nil {
		fields = append(fields, deadletter.FieldAttemptHistory)
	}
	if m.replayed_at != nil {
		fields = append(fields, deadletter.FieldReplayedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldCreatedAt:
		return m.CreatedAt()
	case deadletter.FieldEventID:
		return m.EventID()
	case deadletter.FieldStage:
		return m.Stage()
	case deadletter.FieldReason:
		return m.Reason()
	case deadletter.FieldMessage:
		return m.Message()
	case deadletter.FieldAttemptHistory:
		return m.AttemptHistory()
	case deadletter.FieldReplayedAt:
		return m.ReplayedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deadletter.FieldEventID:
		return m.OldEventID(ctx)
	case deadletter.FieldStage:
		return m.OldStage(ctx)
	case deadletter.FieldReason:
		return m.OldReason(ctx)
	case deadletter.FieldMessage:
		return m.OldMessage(ctx)
	case deadletter.FieldAttemptHistory:
		return m.OldAttemptHistory(ctx)
	case deadletter.FieldReplayedAt:
		return m.OldReplayedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deadletter.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case deadletter.FieldStage:
		v, ok := value.(deadletter.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case deadletter.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case deadletter.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case deadletter.FieldAttemptHistory:
		v, ok := value.([]domain.AttemptRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptHistory(v)
		return nil
	case deadletter.FieldReplayedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplayedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DeadLetter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deadletter.FieldMessage) {
		fields = append(fields, deadletter.FieldMessage)
	}
	if m.FieldCleared(deadletter.FieldAttemptHistory) {
		fields = append(fields, deadletter.FieldAttemptHistory)
	}
	if m.FieldCleared(deadletter.FieldReplayedAt) {
		fields = append(fields, deadletter.FieldReplayedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterMutation) ClearField(name string) error {
	switch name {
	case deadletter.FieldMessage:
		m.ClearMessage()
		return nil
	case deadletter.FieldAttemptHistory:
		m.ClearAttemptHistory()
		return nil
	case deadletter.FieldReplayedAt:
		m.ClearReplayedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterMutation) ResetField(name string) error {
	switch name {
	case deadletter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deadletter.FieldEventID:
		m.ResetEventID()
		return nil
	case deadletter.FieldStage:
		m.ResetStage()
		return nil
	case deadletter.FieldReason:
		m.ResetReason()
		return nil
	case deadletter.FieldMessage:
		m.ResetMessage()
		return nil
	case deadletter.FieldAttemptHistory:
		m.ResetAttemptHistory()
		return nil
	case deadletter.FieldReplayedAt:
		m.ResetReplayedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	source_id          *string
	source_type        *event.SourceType
	raw_content        *string
	normalized_content *string
	raw_hash           *string
	url                *string
	observed_at        *time.Time
	ingested_at        *time.Time
	location_hint      **domain.LocationHint
	nlp_result         **domain.NLPResult
	satellite_result   **domain.SatelliteResult
	fused_risk         *float64
	addfused_risk      *float64
	claim_id           *string
	state              *event.State
	attempt_counts     *map[string]int
	failure_reason     *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Event, error)
	predicates         []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourceID sets the "source_id" field.
func (m *EventMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *EventMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *EventMutation) ResetSourceID() {
	m.source_id = nil
}

// SetSourceType sets the "source_type" field.
func (m *EventMutation) SetSourceType(et event.SourceType) {
	m.source_type = &et
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *EventMutation) SourceType() (r event.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourceType(ctx context.Context) (v event.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *EventMutation) ResetSourceType() {
	m.source_type = nil
}

// SetRawContent sets the "raw_content" field.
func (m *EventMutation) SetRawContent(s string) {
	m.raw_content = &s
}

// RawContent returns the value of the "raw_content" field in the mutation.
func (m *EventMutation) RawContent() (r string, exists bool) {
	v := m.raw_content
	if v == nil {
		return
	}
	return *v, true
}

// OldRawContent returns the old "raw_content" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRawContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawContent: %w", err)
	}
	return oldValue.RawContent, nil
}

// ResetRawContent resets all changes to the "raw_content" field.
func (m *EventMutation) ResetRawContent() {
	m.raw_content = nil
}

// SetNormalizedContent sets the "normalized_content" field.
func (m *EventMutation) SetNormalizedContent(s string) {
	m.normalized_content = &s
}

// NormalizedContent returns the value of the "normalized_content" field in the mutation.
func (m *EventMutation) NormalizedContent() (r string, exists bool) {
	v := m.normalized_content
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedContent returns the old "normalized_content" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldNormalizedContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedContent: %w", err)
	}
	return oldValue.NormalizedContent, nil
}

// ResetNormalizedContent resets all changes to the "normalized_content" field.
func (m *EventMutation) ResetNormalizedContent() {
	m.normalized_content = nil
}

// SetRawHash sets the "raw_hash" field.
func (m *EventMutation) SetRawHash(s string) {
	m.raw_hash = &s
}

// RawHash returns the value of the "raw_hash" field in the mutation.
func (m *EventMutation) RawHash() (r string, exists bool) {
	v := m.raw_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRawHash returns the old "raw_hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRawHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawHash: %w", err)
	}
	return oldValue.RawHash, nil
}

// ResetRawHash resets all changes to the "raw_hash" field.
func (m *EventMutation) ResetRawHash() {
	m.raw_hash = nil
}

// SetURL sets the "url" field.
func (m *EventMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *EventMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *EventMutation) ClearURL() {
	m.url = nil
	m.clearedFields[event.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *EventMutation) URLCleared() bool {
	_, ok := m.clearedFields[event.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *EventMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, event.FieldURL)
}

// SetObservedAt sets the "observed_at" field.
func (m *EventMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *EventMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *EventMutation) ResetObservedAt() {
	m.observed_at = nil
}

// SetIngestedAt sets the "ingested_at" field.
func (m *EventMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *EventMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *EventMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// SetLocationHint sets the "location_hint" field.
func (m *EventMutation) SetLocationHint(dh *domain.LocationHint) {
	m.location_hint = &dh
}

// LocationHint returns the value of the "location_hint" field in the mutation.
func (m *EventMutation) LocationHint() (r *domain.LocationHint, exists bool) {
	v := m.location_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationHint returns the old "location_hint" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLocationHint(ctx context.Context) (v *domain.LocationHint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationHint: %w", err)
	}
	return oldValue.LocationHint, nil
}

// ClearLocationHint clears the value of the "location_hint" field.
func (m *EventMutation) ClearLocationHint() {
	m.location_hint = nil
	m.clearedFields[event.FieldLocationHint] = struct{}{}
}

// LocationHintCleared returns if the "location_hint" field was cleared in this mutation.
func (m *EventMutation) LocationHintCleared() bool {
	_, ok := m.clearedFields[event.FieldLocationHint]
	return ok
}

// ResetLocationHint resets all changes to the "location_hint" field.
func (m *EventMutation) ResetLocationHint() {
	m.location_hint = nil
	delete(m.clearedFields, event.FieldLocationHint)
}

// SetNlpResult sets the "nlp_result" field.
func (m *EventMutation) SetNlpResult(dr *domain.NLPResult) {
	m.nlp_result = &dr
}

// NlpResult returns the value of the "nlp_result" field in the mutation.
func (m *EventMutation) NlpResult() (r *domain.NLPResult, exists bool) {
	v := m.nlp_result
	if v == nil {
		return
	}
	return *v, true
}

// OldNlpResult returns the old "nlp_result" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldNlpResult(ctx context.Context) (v *domain.NLPResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNlpResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNlpResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNlpResult: %w", err)
	}
	return oldValue.NlpResult, nil
}

// ClearNlpResult clears the value of the "nlp_result" field.
func (m *EventMutation) ClearNlpResult() {
	m.nlp_result = nil
	m.clearedFields[event.FieldNlpResult] = struct{}{}
}

// NlpResultCleared returns if the "nlp_result" field was cleared in this mutation.
func (m *EventMutation) NlpResultCleared() bool {
	_, ok := m.clearedFields[event.FieldNlpResult]
	return ok
}

// ResetNlpResult resets all changes to the "nlp_result" field.
func (m *EventMutation) ResetNlpResult() {
	m.nlp_result = nil
	delete(m.clearedFields, event.FieldNlpResult)
}

// SetSatelliteResult sets the "satellite_result" field.
func (m *EventMutation) SetSatelliteResult(dr *domain.SatelliteResult) {
	m.satellite_result = &dr
}

// SatelliteResult returns the value of the "satellite_result" field in the mutation.
func (m *EventMutation) SatelliteResult() (r *domain.SatelliteResult, exists bool) {
	v := m.satellite_result
	if v == nil {
		return
	}
	return *v, true
}

// OldSatelliteResult returns the old "satellite_result" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSatelliteResult(ctx context.Context) (v *domain.SatelliteResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSatelliteResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSatelliteResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSatelliteResult: %w", err)
	}
	return oldValue.SatelliteResult, nil
}

// ClearSatelliteResult clears the value of the "satellite_result" field.
func (m *EventMutation) ClearSatelliteResult() {
	m.satellite_result = nil
	m.clearedFields[event.FieldSatelliteResult] = struct{}{}
}

// SatelliteResultCleared returns if the "satellite_result" field was cleared in this mutation.
func (m *EventMutation) SatelliteResultCleared() bool {
	_, ok := m.clearedFields[event.FieldSatelliteResult]
	return ok
}

// ResetSatelliteResult resets all changes to the "satellite_result" field.
func (m *EventMutation) ResetSatelliteResult() {
	m.satellite_result = nil
	delete(m.clearedFields, event.FieldSatelliteResult)
}

// SetFusedRisk sets the "fused_risk" field.
func (m *EventMutation) SetFusedRisk(f float64) {
	m.fused_risk = &f
	m.addfused_risk = nil
}

// FusedRisk returns the value of the "fused_risk" field in the mutation.
func (m *EventMutation) FusedRisk() (r float64, exists bool) {
	v := m.fused_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldFusedRisk returns the old "fused_risk" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFusedRisk(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFusedRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFusedRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFusedRisk: %w", err)
	}
	return oldValue.FusedRisk, nil
}

// AddFusedRisk adds f to the "fused_risk" field.
func (m *EventMutation) AddFusedRisk(f float64) {
	if m.addfused_risk != nil {
		*m.addfused_risk += f
	} else {
		m.addfused_risk = &f
	}
}

// AddedFusedRisk returns the value that was added to the "fused_risk" field in this mutation.
func (m *EventMutation) AddedFusedRisk() (r float64, exists bool) {
	v := m.addfused_risk
	if v == nil {
		return
	}
	return *v, true
}

// ResetFusedRisk resets all changes to the "fused_risk" field.
func (m *EventMutation) ResetFusedRisk() {
	m.fused_risk = nil
	m.addfused_risk = nil
}

// SetClaimID sets the "claim_id" field.
func (m *EventMutation) SetClaimID(s string) {
	m.claim_id = &s
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *EventMutation) ClaimID() (r string, exists bool) {
	v := m.claim_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldClaimID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ClearClaimID clears the value of the "claim_id" field.
func (m *EventMutation) ClearClaimID() {
	m.claim_id = nil
	m.clearedFields[event.FieldClaimID] = struct{}{}
}

// ClaimIDCleared returns if the "claim_id" field was cleared in this mutation.
func (m *EventMutation) ClaimIDCleared() bool {
	_, ok := m.clearedFields[event.FieldClaimID]
	return ok
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *EventMutation) ResetClaimID() {
	m.claim_id = nil
	delete(m.clearedFields, event.FieldClaimID)
}

// SetState sets the "state" field.
func (m *EventMutation) SetState(e event.State) {
	m.state = &e
}

// State returns the value of the "state" field in the mutation.
func (m *EventMutation) State() (r event.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldState(ctx context.Context) (v event.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *EventMutation) ResetState() {
	m.state = nil
}

// SetAttemptCounts sets the "attempt_counts" field.
func (m *EventMutation) SetAttemptCounts(value map[string]int) {
	m.attempt_counts = &value
}

// AttemptCounts returns the value of the "attempt_counts" field in the mutation.
func (m *EventMutation) AttemptCounts() (r map[string]int, exists bool) {
	v := m.attempt_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCounts returns the old "attempt_counts" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAttemptCounts(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCounts: %w", err)
	}
	return oldValue.AttemptCounts, nil
}

// ClearAttemptCounts clears the value of the "attempt_counts" field.
func (m *EventMutation) ClearAttemptCounts() {
	m.attempt_counts = nil
	m.clearedFields[event.FieldAttemptCounts] = struct{}{}
}

// AttemptCountsCleared returns if the "attempt_counts" field was cleared in this mutation.
func (m *EventMutation) AttemptCountsCleared() bool {
	_, ok := m.clearedFields[event.FieldAttemptCounts]
	return ok
}

// ResetAttemptCounts resets all changes to the "attempt_counts" field.
func (m *EventMutation) ResetAttemptCounts() {
	m.attempt_counts = nil
	delete(m.clearedFields, event.FieldAttemptCounts)
}

// SetFailureReason sets the "failure_reason" field.
func (m *EventMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *EventMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *EventMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[event.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *EventMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[event.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *EventMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, event.FieldFailureReason)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	if m.source_id != nil {
		fields = append(fields, event.FieldSourceID)
	}
	if m.source_type != nil {
		fields = append(fields, event.FieldSourceType)
	}
	if m.raw_content != nil {
		fields = append(fields, event.FieldRawContent)
	}
	if m.normalized_content != nil {
		fields = append(fields, event.FieldNormalizedContent)
	}
	if m.raw_hash != nil {
		fields = append(fields, event.FieldRawHash)
	}
	if m.url != nil {
		fields = append(fields, event.FieldURL)
	}
	if m.observed_at != nil {
		fields = append(fields, event.FieldObservedAt)
	}
	if m.ingested_at != nil {
		fields = append(fields, event.FieldIngestedAt)
	}
	if m.location_hint != nil {
		fields = append(fields, event.FieldLocationHint)
	}
	if m.nlp_result != nil {
		fields = append(fields, event.FieldNlpResult)
	}
	if m.satellite_result != nil {
		fields = append(fields, event.FieldSatelliteResult)
	}
	if m.fused_risk != nil {
		fields = append(fields, event.FieldFusedRisk)
	}
	if m.claim_id != nil {
		fields = append(fields, event.FieldClaimID)
	}
	if m.state != nil {
		fields = append(fields, event.FieldState)
	}
	if m.attempt_counts != nil {
		fields = append(fields, event.FieldAttemptCounts)
	}
	if m.failure_reason != nil {
		fields = append(fields, event.FieldFailureReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	case event.FieldSourceID:
		return m.SourceID()
	case event.FieldSourceType:
		return m.SourceType()
	case event.FieldRawContent:
		return m.RawContent()
	case event.FieldNormalizedContent:
		return m.NormalizedContent()
	case event.FieldRawHash:
		return m.RawHash()
	case event.FieldURL:
		return m.URL()
	case event.FieldObservedAt:
		return m.ObservedAt()
	case event.FieldIngestedAt:
		return m.IngestedAt()
	case event.FieldLocationHint:
		return m.LocationHint()
	case event.FieldNlpResult:
		return m.NlpResult()
	case event.FieldSatelliteResult:
		return m.SatelliteResult()
	case event.FieldFusedRisk:
		return m.FusedRisk()
	case event.FieldClaimID:
		return m.ClaimID()
	case event.FieldState:
		return m.State()
	case event.FieldAttemptCounts:
		return m.AttemptCounts()
	case event.FieldFailureReason:
		return m.FailureReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case event.FieldSourceID:
		return m.OldSourceID(ctx)
	case event.FieldSourceType:
		return m.OldSourceType(ctx)
	case event.FieldRawContent:
		return m.OldRawContent(ctx)
	case event.FieldNormalizedContent:
		return m.OldNormalizedContent(ctx)
	case event.FieldRawHash:
		return m.OldRawHash(ctx)
	case event.FieldURL:
		return m.OldURL(ctx)
	case event.FieldObservedAt:
		return m.OldObservedAt(ctx)
	case event.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	case event.FieldLocationHint:
		return m.OldLocationHint(ctx)
	case event.FieldNlpResult:
		return m.OldNlpResult(ctx)
	case event.FieldSatelliteResult:
		return m.OldSatelliteResult(ctx)
	case event.FieldFusedRisk:
		return m.OldFusedRisk(ctx)
	case event.FieldClaimID:
		return m.OldClaimID(ctx)
	case event.FieldState:
		return m.OldState(ctx)
	case event.FieldAttemptCounts:
		return m.OldAttemptCounts(ctx)
	case event.FieldFailureReason:
		return m.OldFailureReason(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case event.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case event.FieldSourceType:
		v, ok := value.(event.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case event.FieldRawContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawContent(v)
		return nil
	case event.FieldNormalizedContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedContent(v)
		return nil
	case event.FieldRawHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawHash(v)
		return nil
	case event.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case event.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	case event.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	case event.FieldLocationHint:
		v, ok := value.(*domain.LocationHint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationHint(v)
		return nil
	case event.FieldNlpResult:
		v, ok := value.(*domain.NLPResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNlpResult(v)
		return nil
	case event.FieldSatelliteResult:
		v, ok := value.(*domain.SatelliteResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSatelliteResult(v)
		return nil
	case event.FieldFusedRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFusedRisk(v)
		return nil
	case event.FieldClaimID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case event.FieldState:
		v, ok := value.(event.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case event.FieldAttemptCounts:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCounts(v)
		return nil
	case event.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addfused_risk != nil {
		fields = append(fields, event.FieldFusedRisk)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldFusedRisk:
		return m.AddedFusedRisk()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldFusedRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFusedRisk(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldURL) {
		fields = append(fields, event.FieldURL)
	}
	if m.FieldCleared(event.FieldLocationHint) {
		fields = append(fields, event.FieldLocationHint)
	}
	if m.FieldCleared(event.FieldNlpResult) {
		fields = append(fields, event.FieldNlpResult)
	}
	if m.FieldCleared(event.FieldSatelliteResult) {
		fields = append(fields, event.FieldSatelliteResult)
	}
	if m.FieldCleared(event.FieldClaimID) {
		fields = append(fields, event.FieldClaimID)
	}
	if m.FieldCleared(event.FieldAttemptCounts) {
		fields = append(fields, event.FieldAttemptCounts)
	}
	if m.FieldCleared(event.FieldFailureReason) {
		fields = append(fields, event.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldURL:
		m.ClearURL()
		return nil
	case event.FieldLocationHint:
		m.ClearLocationHint()
		return nil
	case event.FieldNlpResult:
		m.ClearNlpResult()
		return nil
	case event.FieldSatelliteResult:
		m.ClearSatelliteResult()
		return nil
	case event.FieldClaimID:
		m.ClearClaimID()
		return nil
	case event.FieldAttemptCounts:
		m.ClearAttemptCounts()
		return nil
	case event.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case event.FieldSourceID:
		m.ResetSourceID()
		return nil
	case event.FieldSourceType:
		m.ResetSourceType()
		return nil
	case event.FieldRawContent:
		m.ResetRawContent()
		return nil
	case event.FieldNormalizedContent:
		m.ResetNormalizedContent()
		return nil
	case event.FieldRawHash:
		m.ResetRawHash()
		return nil
	case event.FieldURL:
		m.ResetURL()
		return nil
	case event.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	case event.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	case event.FieldLocationHint:
		m.ResetLocationHint()
		return nil
	case event.FieldNlpResult:
		m.ResetNlpResult()
		return nil
	case event.FieldSatelliteResult:
		m.ResetSatelliteResult()
		return nil
	case event.FieldFusedRisk:
		m.ResetFusedRisk()
		return nil
	case event.FieldClaimID:
		m.ResetClaimID()
		return nil
	case event.FieldState:
		m.ResetState()
		return nil
	case event.FieldAttemptCounts:
		m.ResetAttemptCounts()
		return nil
	case event.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// StateAggregationMutation represents an operation that mutates the StateAggregation nodes in the graph.
type StateAggregationMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	created_at                 *time.Time
	updated_at                 *time.Time
	region                     *string
	date                       *string
	hour                       *int
	addhour                    *int
	total_events               *int64
	addtotal_events            *int64
	high_risk_events           *int64
	addhigh_risk_events        *int64
	validated_events           *int64
	addvalidated_events        *int64
	avg_misinformation_risk    *float64
	addavg_misinformation_risk *float64
	max_misinformation_risk    *float64
	addmax_misinformation_risk *float64
	heat_intensity             *float64
	addheat_intensity          *float64
	category_breakdown         *map[string]int64
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*StateAggregation, error)
	predicates                 []predicate.StateAggregation
}

var _ ent.Mutation = (*StateAggregationMutation)(nil)

// stateaggregationOption allows management of the mutation configuration using functional options.
type stateaggregationOption func(*StateAggregationMutation)

// newStateAggregationMutation creates new mutation for the StateAggregation entity.
func newStateAggregationMutation(c config, op Op, opts ...stateaggregationOption) *StateAggregationMutation {
	m := &StateAggregationMutation{
		config:        c,
		op:            op,
		typ:           TypeStateAggregation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStateAggregationID sets the ID field of the mutation.
func withStateAggregationID(id string) stateaggregationOption {
	return func(m *StateAggregationMutation) {
		var (
			err   error
			once  sync.Once
			value *StateAggregation
		)
		m.oldValue = func(ctx context.Context) (*StateAggregation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StateAggregation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStateAggregation sets the old StateAggregation of the mutation.
func withStateAggregation(node *StateAggregation) stateaggregationOption {
	return func(m *StateAggregationMutation) {
		m.oldValue = func(context.Context) (*StateAggregation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StateAggregationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StateAggregationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StateAggregation entities.
func (m *StateAggregationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StateAggregationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StateAggregationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StateAggregation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StateAggregationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StateAggregationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StateAggregationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StateAggregationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StateAggregationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StateAggregationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRegion sets the "region" field.
func (m *StateAggregationMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *StateAggregationMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *StateAggregationMutation) ResetRegion() {
	m.region = nil
}

// SetDate sets the "date" field.
func (m *StateAggregationMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *StateAggregationMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *StateAggregationMutation) ResetDate() {
	m.date = nil
}

// SetHour sets the "hour" field.
func (m *StateAggregationMutation) SetHour(i int) {
	m.hour = &i
	m.addhour = nil
}

// Hour returns the value of the "hour" field in the mutation.
func (m *StateAggregationMutation) Hour() (r int, exists bool) {
	v := m.hour
	if v == nil {
		return
	}
	return *v, true
}

// OldHour returns the old "hour" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldHour(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHour: %w", err)
	}
	return oldValue.Hour, nil
}

// AddHour adds i to the "hour" field.
func (m *StateAggregationMutation) AddHour(i int) {
	if m.addhour != nil {
		*m.addhour += i
	} else {
		m.addhour = &i
	}
}

// AddedHour returns the value that was added to the "hour" field in this mutation.
func (m *StateAggregationMutation) AddedHour() (r int, exists bool) {
	v := m.addhour
	if v == nil {
		return
	}
	return *v, true
}

// ResetHour resets all changes to the "hour" field.
func (m *StateAggregationMutation) ResetHour() {
	m.hour = nil
	m.addhour = nil
}

// SetTotalEvents sets the "total_events" field.
func (m *StateAggregationMutation) SetTotalEvents(i int64) {
	m.total_events = &i
	m.addtotal_events = nil
}

// TotalEvents returns the value of the "total_events" field in the mutation.
func (m *StateAggregationMutation) TotalEvents() (r int64, exists bool) {
	v := m.total_events
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEvents returns the old "total_events" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldTotalEvents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEvents: %w", err)
	}
	return oldValue.TotalEvents, nil
}

// AddTotalEvents adds i to the "total_events" field.
func (m *StateAggregationMutation) AddTotalEvents(i int64) {
	if m.addtotal_events != nil {
		*m.addtotal_events += i
	} else {
		m.addtotal_events = &i
	}
}

// AddedTotalEvents returns the value that was added to the "total_events" field in this mutation.
func (m *StateAggregationMutation) AddedTotalEvents() (r int64, exists bool) {
	v := m.addtotal_events
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEvents resets all changes to the "total_events" field.
func (m *StateAggregationMutation) ResetTotalEvents() {
	m.total_events = nil
	m.addtotal_events = nil
}

// SetHighRiskEvents sets the "high_risk_events" field.
func (m *StateAggregationMutation) SetHighRiskEvents(i int64) {
	m.high_risk_events = &i
	m.addhigh_risk_events = nil
}

// HighRiskEvents returns the value of the "high_risk_events" field in the mutation.
func (m *StateAggregationMutation) HighRiskEvents() (r int64, exists bool) {
	v := m.high_risk_events
	if v == nil {
		return
	}
	return *v, true
}

// OldHighRiskEvents returns the old "high_risk_events" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldHighRiskEvents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighRiskEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighRiskEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighRiskEvents: %w", err)
	}
	return oldValue.HighRiskEvents, nil
}

// AddHighRiskEvents adds i to the "high_risk_events" field.
func (m *StateAggregationMutation) AddHighRiskEvents(i int64) {
	if m.addhigh_risk_events != nil {
		*m.addhigh_risk_events += i
	} else {
		m.addhigh_risk_events = &i
	}
}

// AddedHighRiskEvents returns the value that was added to the "high_risk_events" field in this mutation.
func (m *StateAggregationMutation) AddedHighRiskEvents() (r int64, exists bool) {
	v := m.addhigh_risk_events
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighRiskEvents resets all changes to the "high_risk_events" field.
func (m *StateAggregationMutation) ResetHighRiskEvents() {
	m.high_risk_events = nil
	m.addhigh_risk_events = nil
}

// SetValidatedEvents sets the "validated_events" field.
func (m *StateAggregationMutation) SetValidatedEvents(i int64) {
	m.validated_events = &i
	m.addvalidated_events = nil
}

// ValidatedEvents returns the value of the "validated_events" field in the mutation.
func (m *StateAggregationMutation) ValidatedEvents() (r int64, exists bool) {
	v := m.validated_events
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedEvents returns the old "validated_events" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldValidatedEvents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedEvents: %w", err)
	}
	return oldValue.ValidatedEvents, nil
}

// AddValidatedEvents adds i to the "validated_events" field.
func (m *StateAggregationMutation) AddValidatedEvents(i int64) {
	if m.addvalidated_events != nil {
		*m.addvalidated_events += i
	} else {
		m.addvalidated_events = &i
	}
}

// AddedValidatedEvents returns the value that was added to the "validated_events" field in this mutation.
func (m *StateAggregationMutation) AddedValidatedEvents() (r int64, exists bool) {
	v := m.addvalidated_events
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidatedEvents resets all changes to the "validated_events" field.
func (m *StateAggregationMutation) ResetValidatedEvents() {
	m.validated_events = nil
	m.addvalidated_events = nil
}

// SetAvgMisinformationRisk sets the "avg_misinformation_risk" field.
func (m *StateAggregationMutation) SetAvgMisinformationRisk(f float64) {
	m.avg_misinformation_risk = &f
	m.addavg_misinformation_risk = nil
}

// AvgMisinformationRisk returns the value of the "avg_misinformation_risk" field in the mutation.
func (m *StateAggregationMutation) AvgMisinformationRisk() (r float64, exists bool) {
	v := m.avg_misinformation_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgMisinformationRisk returns the old "avg_misinformation_risk" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldAvgMisinformationRisk(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgMisinformationRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgMisinformationRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgMisinformationRisk: %w", err)
	}
	return oldValue.AvgMisinformationRisk, nil
}

// AddAvgMisinformationRisk adds f to the "avg_misinformation_risk" field.
func (m *StateAggregationMutation) AddAvgMisinformationRisk(f float64) {
	if m.addavg_misinformation_risk != nil {
		*m.addavg_misinformation_risk += f
	} else {
		m.addavg_misinformation_risk = &f
	}
}

// AddedAvgMisinformationRisk returns the value that was added to the "avg_misinformation_risk" field in this mutation.
func (m *StateAggregationMutation) AddedAvgMisinformationRisk() (r float64, exists bool) {
	v := m.addavg_misinformation_risk
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgMisinformationRisk resets all changes to the "avg_misinformation_risk" field.
func (m *StateAggregationMutation) ResetAvgMisinformationRisk() {
	m.avg_misinformation_risk = nil
	m.addavg_misinformation_risk = nil
}

// SetMaxMisinformationRisk sets the "max_misinformation_risk" field.
func (m *StateAggregationMutation) SetMaxMisinformationRisk(f float64) {
	m.max_misinformation_risk = &f
	m.addmax_misinformation_risk = nil
}

// MaxMisinformationRisk returns the value of the "max_misinformation_risk" field in the mutation.
func (m *StateAggregationMutation) MaxMisinformationRisk() (r float64, exists bool) {
	v := m.max_misinformation_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxMisinformationRisk returns the old "max_misinformation_risk" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldMaxMisinformationRisk(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxMisinformationRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxMisinformationRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxMisinformationRisk: %w", err)
	}
	return oldValue.MaxMisinformationRisk, nil
}

// AddMaxMisinformationRisk adds f to the "max_misinformation_risk" field.
func (m *StateAggregationMutation) AddMaxMisinformationRisk(f float64) {
	if m.addmax_misinformation_risk != nil {
		*m.addmax_misinformation_risk += f
	} else {
		m.addmax_misinformation_risk = &f
	}
}

// AddedMaxMisinformationRisk returns the value that was added to the "max_misinformation_risk" field in this mutation.
func (m *StateAggregationMutation) AddedMaxMisinformationRisk() (r float64, exists bool) {
	v := m.addmax_misinformation_risk
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxMisinformationRisk resets all changes to the "max_misinformation_risk" field.
func (m *StateAggregationMutation) ResetMaxMisinformationRisk() {
	m.max_misinformation_risk = nil
	m.addmax_misinformation_risk = nil
}

// SetHeatIntensity sets the "heat_intensity" field.
func (m *StateAggregationMutation) SetHeatIntensity(f float64) {
	m.heat_intensity = &f
	m.addheat_intensity = nil
}

// HeatIntensity returns the value of the "heat_intensity" field in the mutation.
func (m *StateAggregationMutation) HeatIntensity() (r float64, exists bool) {
	v := m.heat_intensity
	if v == nil {
		return
	}
	return *v, true
}

// OldHeatIntensity returns the old "heat_intensity" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldHeatIntensity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeatIntensity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeatIntensity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeatIntensity: %w", err)
	}
	return oldValue.HeatIntensity, nil
}

// AddHeatIntensity adds f to the "heat_intensity" field.
func (m *StateAggregationMutation) AddHeatIntensity(f float64) {
	if m.addheat_intensity != nil {
		*m.addheat_intensity += f
	} else {
		m.addheat_intensity = &f
	}
}

// AddedHeatIntensity returns the value that was added to the "heat_intensity" field in this mutation.
func (m *StateAggregationMutation) AddedHeatIntensity() (r float64, exists bool) {
	v := m.addheat_intensity
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeatIntensity resets all changes to the "heat_intensity" field.
func (m *StateAggregationMutation) ResetHeatIntensity() {
	m.heat_intensity = nil
	m.addheat_intensity = nil
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (m *StateAggregationMutation) SetCategoryBreakdown(value map[string]int64) {
	m.category_breakdown = &value
}

// CategoryBreakdown returns the value of the "category_breakdown" field in the mutation.
func (m *StateAggregationMutation) CategoryBreakdown() (r map[string]int64, exists bool) {
	v := m.category_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryBreakdown returns the old "category_breakdown" field's value of the StateAggregation entity.
// If the StateAggregation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateAggregationMutation) OldCategoryBreakdown(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryBreakdown: %w", err)
	}
	return oldValue.CategoryBreakdown, nil
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (m *StateAggregationMutation) ClearCategoryBreakdown() {
	m.category_breakdown = nil
	m.clearedFields[stateaggregation.FieldCategoryBreakdown] = struct{}{}
}

// CategoryBreakdownCleared returns if the "category_breakdown" field was cleared in this mutation.
func (m *StateAggregationMutation) CategoryBreakdownCleared() bool {
	_, ok := m.clearedFields[stateaggregation.FieldCategoryBreakdown]
	return ok
}

// ResetCategoryBreakdown resets all changes to the "category_breakdown" field.
func (m *StateAggregationMutation) ResetCategoryBreakdown() {
	m.category_breakdown = nil
	delete(m.clearedFields, stateaggregation.FieldCategoryBreakdown)
}

// Where appends a list predicates to the StateAggregationMutation builder.
func (m *StateAggregationMutation) Where(ps ...predicate.StateAggregation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StateAggregationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StateAggregationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StateAggregation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StateAggregationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StateAggregationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StateAggregation).
func (m *StateAggregationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StateAggregationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, stateaggregation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stateaggregation.FieldUpdatedAt)
	}
	if m.region != nil {
		fields = append(fields, stateaggregation.FieldRegion)
	}
	if m.date != nil {
		fields = append(fields, stateaggregation.FieldDate)
	}
	if m.hour != nil {
		fields = append(fields, stateaggregation.FieldHour)
	}
	if m.total_events != nil {
		fields = append(fields, stateaggregation.FieldTotalEvents)
	}
	if m.high_risk_events != nil {
		fields = append(fields, stateaggregation.FieldHighRiskEvents)
	}
	if m.validated_events != nil {
		fields = append(fields, stateaggregation.FieldValidatedEvents)
	}
	if m.avg_misinformation_risk != nil {
		fields = append(fields, stateaggregation.FieldAvgMisinformationRisk)
	}
	if m.max_misinformation_risk != nil {
		fields = append(fields, stateaggregation.FieldMaxMisinformationRisk)
	}
	if m.heat_intensity != nil {
		fields = append(fields, stateaggregation.FieldHeatIntensity)
	}
	if m.category_breakdown != nil {
		fields = append(fields, stateaggregation.FieldCategoryBreakdown)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StateAggregationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stateaggregation.FieldCreatedAt:
		return m.CreatedAt()
	case stateaggregation.FieldUpdatedAt:
		return m.UpdatedAt()
	case stateaggregation.FieldRegion:
		return m.Region()
	case stateaggregation.FieldDate:
		return m.Date()
	case stateaggregation.FieldHour:
		return m.Hour()
	case stateaggregation.FieldTotalEvents:
		return m.TotalEvents()
	case stateaggregation.FieldHighRiskEvents:
		return m.HighRiskEvents()
	case stateaggregation.FieldValidatedEvents:
		return m.ValidatedEvents()
	case stateaggregation.FieldAvgMisinformationRisk:
		return m.AvgMisinformationRisk()
	case stateaggregation.FieldMaxMisinformationRisk:
		return m.MaxMisinformationRisk()
	case stateaggregation.FieldHeatIntensity:
		return m.HeatIntensity()
	case stateaggregation.FieldCategoryBreakdown:
		return m.CategoryBreakdown()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StateAggregationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stateaggregation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stateaggregation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stateaggregation.FieldRegion:
		return m.OldRegion(ctx)
	case stateaggregation.FieldDate:
		return m.OldDate(ctx)
	case stateaggregation.FieldHour:
		return m.OldHour(ctx)
	case stateaggregation.FieldTotalEvents:
		return m.OldTotalEvents(ctx)
	case stateaggregation.FieldHighRiskEvents:
		return m.OldHighRiskEvents(ctx)
	case stateaggregation.FieldValidatedEvents:
		return m.OldValidatedEvents(ctx)
	case stateaggregation.FieldAvgMisinformationRisk:
		return m.OldAvgMisinformationRisk(ctx)
	case stateaggregation.FieldMaxMisinformationRisk:
		return m.OldMaxMisinformationRisk(ctx)
	case stateaggregation.FieldHeatIntensity:
		return m.OldHeatIntensity(ctx)
	case stateaggregation.FieldCategoryBreakdown:
		return m.OldCategoryBreakdown(ctx)
	}
	return nil, fmt.Errorf("unknown StateAggregation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateAggregationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stateaggregation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stateaggregation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stateaggregation.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case stateaggregation.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case stateaggregation.FieldHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHour(v)
		return nil
	case stateaggregation.FieldTotalEvents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEvents(v)
		return nil
	case stateaggregation.FieldHighRiskEvents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighRiskEvents(v)
		return nil
	case stateaggregation.FieldValidatedEvents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedEvents(v)
		return nil
	case stateaggregation.FieldAvgMisinformationRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgMisinformationRisk(v)
		return nil
	case stateaggregation.FieldMaxMisinformationRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxMisinformationRisk(v)
		return nil
	case stateaggregation.FieldHeatIntensity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeatIntensity(v)
		return nil
	case stateaggregation.FieldCategoryBreakdown:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryBreakdown(v)
		return nil
	}
	return fmt.Errorf("unknown StateAggregation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StateAggregationMutation) AddedFields() []string {
	var fields []string
	if m.addhour != nil {
		fields = append(fields, stateaggregation.FieldHour)
	}
	if m.addtotal_events != nil {
		fields = append(fields, stateaggregation.FieldTotalEvents)
	}
	if m.addhigh_risk_events != nil {
		fields = append(fields, stateaggregation.FieldHighRiskEvents)
	}
	if m.addvalidated_events != nil {
		fields = append(fields, stateaggregation.FieldValidatedEvents)
	}
	if m.addavg_misinformation_risk != nil {
		fields = append(fields, stateaggregation.FieldAvgMisinformationRisk)
	}
	if m.addmax_misinformation_risk != nil {
		fields = append(fields, stateaggregation.FieldMaxMisinformationRisk)
	}
	if m.addheat_intensity != nil {
		fields = append(fields, stateaggregation.FieldHeatIntensity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StateAggregationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stateaggregation.FieldHour:
		return m.AddedHour()
	case stateaggregation.FieldTotalEvents:
		return m.AddedTotalEvents()
	case stateaggregation.FieldHighRiskEvents:
		return m.AddedHighRiskEvents()
	case stateaggregation.FieldValidatedEvents:
		return m.AddedValidatedEvents()
	case stateaggregation.FieldAvgMisinformationRisk:
		return m.AddedAvgMisinformationRisk()
	case stateaggregation.FieldMaxMisinformationRisk:
		return m.AddedMaxMisinformationRisk()
	case stateaggregation.FieldHeatIntensity:
		return m.AddedHeatIntensity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateAggregationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stateaggregation.FieldHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHour(v)
		return nil
	case stateaggregation.FieldTotalEvents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEvents(v)
		return nil
	case stateaggregation.FieldHighRiskEvents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighRiskEvents(v)
		return nil
	case stateaggregation.FieldValidatedEvents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidatedEvents(v)
		return nil
	case stateaggregation.FieldAvgMisinformationRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgMisinformationRisk(v)
		return nil
	case stateaggregation.FieldMaxMisinformationRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxMisinformationRisk(v)
		return nil
	case stateaggregation.FieldHeatIntensity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeatIntensity(v)
		return nil
	}
	return fmt.Errorf("unknown StateAggregation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StateAggregationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stateaggregation.FieldCategoryBreakdown) {
		fields = append(fields, stateaggregation.FieldCategoryBreakdown)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StateAggregationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StateAggregationMutation) ClearField(name string) error {
	switch name {
	case stateaggregation.FieldCategoryBreakdown:
		m.ClearCategoryBreakdown()
		return nil
	}
	return fmt.Errorf("unknown StateAggregation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StateAggregationMutation) ResetField(name string) error {
	switch name {
	case stateaggregation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stateaggregation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stateaggregation.FieldRegion:
		m.ResetRegion()
		return nil
	case stateaggregation.FieldDate:
		m.ResetDate()
		return nil
	case stateaggregation.FieldHour:
		m.ResetHour()
		return nil
	case stateaggregation.FieldTotalEvents:
		m.ResetTotalEvents()
		return nil
	case stateaggregation.FieldHighRiskEvents:
		m.ResetHighRiskEvents()
		return nil
	case stateaggregation.FieldValidatedEvents:
		m.ResetValidatedEvents()
		return nil
	case stateaggregation.FieldAvgMisinformationRisk:
		m.ResetAvgMisinformationRisk()
		return nil
	case stateaggregation.FieldMaxMisinformationRisk:
		m.ResetMaxMisinformationRisk()
		return nil
	case stateaggregation.FieldHeatIntensity:
		m.ResetHeatIntensity()
		return nil
	case stateaggregation.FieldCategoryBreakdown:
		m.ResetCategoryBreakdown()
		return nil
	}
	return fmt.Errorf("unknown StateAggregation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StateAggregationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StateAggregationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StateAggregationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StateAggregationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StateAggregationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StateAggregationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StateAggregationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StateAggregation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StateAggregationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StateAggregation edge %s", name)
}
