package organization

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/logging"
	"github.com/hupe1980/xrmtesting/plaintext"
)

// Options configures a FakeService.
type Options struct {
	// Logger receives one structured entry per operation (defaults to NoOp).
	Logger logging.Logger

	// Output receives the human-readable trace blocks (defaults to io.Discard).
	Output io.Writer

	// GenerateIDs assigns a fresh UUID to created records. When false every
	// Create returns uuid.Nil.
	GenerateIDs bool

	// Fixture data available before the first operation.
	Entities          []*core.Entity
	EntityMetadata    []*core.EntityMetadata
	AttributeMetadata []*core.AttributeMetadata
}

// AssociationKind tells Associate from Disassociate calls.
type AssociationKind string

const (
	// KindAssociate marks an Associate call.
	KindAssociate AssociationKind = "Associate"
	// KindDisassociate marks a Disassociate call.
	KindDisassociate AssociationKind = "Disassociate"
)

// Association records one Associate or Disassociate call.
type Association struct {
	Kind         AssociationKind
	EntityName   string
	EntityID     uuid.UUID
	Relationship core.Relationship
	Related      core.EntityReferenceCollection
}

// RequestHandler serves a request by name in place of (or in addition to)
// the built-in dispatch. Register handlers with FakeService.Handle.
type RequestHandler func(ctx context.Context, req core.OrganizationRequest) (*core.OrganizationResponse, error)

// FakeService is an in-memory core.OrganizationService.
//
// Fixture records act as the database. Create and Update are recorded but
// never persisted; Delete adds the id to a deleted set that Retrieve and
// RetrieveMultiple consult before lookup. Identifier uniqueness is not
// enforced: the first matching record wins.
//
// Concurrency: state is guarded by a mutex; handlers run without the lock
// held so they may call back into the service.
type FakeService struct {
	logger      logging.Logger
	out         io.Writer
	generateIDs bool

	mu                sync.RWMutex
	entities          []*core.Entity
	entityMetadata    []*core.EntityMetadata
	attributeMetadata []*core.AttributeMetadata
	handlers          map[string]RequestHandler

	created      []*core.Entity
	updated      []*core.Entity
	executed     []core.OrganizationRequest
	deleted      []uuid.UUID
	deletedSet   map[uuid.UUID]struct{}
	associations []Association

	outMu sync.Mutex
}

// NewFakeService constructs a fake service. Any unset option falls back to
// a silent default.
func NewFakeService(optFns ...func(o *Options)) *FakeService {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Output: io.Discard,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	s := &FakeService{
		logger:      logging.OrNoOp(opts.Logger),
		out:         opts.Output,
		generateIDs: opts.GenerateIDs,
		handlers:    map[string]RequestHandler{},
		deletedSet:  map[uuid.UUID]struct{}{},
	}
	s.AddEntities(opts.Entities...)
	s.AddEntityMetadata(opts.EntityMetadata...)
	s.AddAttributeMetadata(opts.AttributeMetadata...)
	return s
}

// AddEntities appends fixture records.
func (s *FakeService) AddEntities(entities ...*core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		if e != nil {
			s.entities = append(s.entities, e)
		}
	}
}

// AddEntityMetadata appends fixture entity metadata.
func (s *FakeService) AddEntityMetadata(md ...*core.EntityMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range md {
		if m != nil {
			s.entityMetadata = append(s.entityMetadata, m)
		}
	}
}

// AddAttributeMetadata appends fixture attribute metadata.
func (s *FakeService) AddAttributeMetadata(md ...*core.AttributeMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range md {
		if m != nil {
			s.attributeMetadata = append(s.attributeMetadata, m)
		}
	}
}

// Entities returns the fixture records (the slice is a copy, the records are shared).
func (s *FakeService) Entities() []*core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*core.Entity{}, s.entities...)
}

// Created returns snapshots of the records passed to Create, in call order.
func (s *FakeService) Created() []*core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*core.Entity{}, s.created...)
}

// Updated returns snapshots of the records passed to Update, in call order.
func (s *FakeService) Updated() []*core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*core.Entity{}, s.updated...)
}

// Executed returns every request passed to Execute, including failed ones.
func (s *FakeService) Executed() []core.OrganizationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.OrganizationRequest{}, s.executed...)
}

// Deleted returns the ids passed to Delete, in call order.
func (s *FakeService) Deleted() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uuid.UUID{}, s.deleted...)
}

// Associations returns every Associate / Disassociate call.
func (s *FakeService) Associations() []Association {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Association{}, s.associations...)
}

// IsDeleted reports whether id was passed to Delete.
func (s *FakeService) IsDeleted(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.deletedSet[id]
	return ok
}

// Reset clears every recorder and the deleted set. Fixtures and handlers stay.
func (s *FakeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = nil
	s.updated = nil
	s.executed = nil
	s.deleted = nil
	s.deletedSet = map[uuid.UUID]struct{}{}
	s.associations = nil
}

// Handle registers a handler for requests whose RequestName equals name.
// Registered handlers take precedence over the built-in dispatch.
func (s *FakeService) Handle(name string, h RequestHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == nil {
		delete(s.handlers, name)
		return
	}
	s.handlers[name] = h
}

func (s *FakeService) handler(name string) (RequestHandler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.handlers[name]
	return h, ok
}

// Create records the entity and returns its id (uuid.Nil unless GenerateIDs
// is set). The id is also written back to entity.ID.
func (s *FakeService) Create(ctx context.Context, entity *core.Entity) (uuid.UUID, error) {
	tr := newTrace("Create entity")
	if err := ctx.Err(); err != nil {
		return uuid.Nil, s.fail("create", tr, err)
	}
	id, err := s.create(entity, tr)
	if err != nil {
		return uuid.Nil, s.fail("create", tr, err)
	}
	s.done("create", tr, "entity", entity.LogicalName, "id", id)
	return id, nil
}

func (s *FakeService) create(entity *core.Entity, tr *trace) (uuid.UUID, error) {
	if entity == nil {
		return uuid.Nil, fmt.Errorf("create: entity is nil")
	}
	entity.ID = uuid.Nil
	if s.generateIDs {
		entity.ID = uuid.New()
	}
	tr.line(plaintext.Entity(entity))

	s.mu.Lock()
	s.created = append(s.created, entity.Clone())
	s.mu.Unlock()
	return entity.ID, nil
}

// Retrieve returns a copy of the fixture record with the given id. A record
// deleted earlier yields core.ErrDeleted; a missing one a
// *core.RecordNotFoundError. The column set is traced but not applied.
func (s *FakeService) Retrieve(ctx context.Context, entityName string, id uuid.UUID, columns core.ColumnSet) (*core.Entity, error) {
	tr := newTrace("Retrieve entity")
	tr.linef("EntityName = %s", entityName)
	tr.linef("ID = %s", id)
	tr.line(plaintext.ColumnSet(columns))
	tr.blank()
	if err := ctx.Err(); err != nil {
		return nil, s.fail("retrieve", tr, err)
	}

	entity, err := s.lookup(entityName, id)
	if err != nil {
		return nil, s.fail("retrieve", tr, err)
	}
	tr.line("Retrieved entity")
	tr.blank()
	tr.line(plaintext.Entity(entity))
	s.done("retrieve", tr, "entity", entityName, "id", id)
	return entity.Clone(), nil
}

func (s *FakeService) lookup(entityName string, id uuid.UUID) (*core.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.deletedSet[id]; ok {
		return nil, core.ErrDeleted
	}
	for _, e := range s.entities {
		if e.ID == id && (entityName == "" || strings.EqualFold(e.LogicalName, entityName)) {
			return e, nil
		}
	}
	return nil, &core.RecordNotFoundError{EntityName: entityName, ID: id}
}

// Update records a snapshot of the entity. Fixture records are untouched.
func (s *FakeService) Update(ctx context.Context, entity *core.Entity) error {
	tr := newTrace("Update entity")
	if err := ctx.Err(); err != nil {
		return s.fail("update", tr, err)
	}
	if err := s.update(entity, tr); err != nil {
		return s.fail("update", tr, err)
	}
	s.done("update", tr, "entity", entity.LogicalName, "id", entity.ID)
	return nil
}

func (s *FakeService) update(entity *core.Entity, tr *trace) error {
	if entity == nil {
		return fmt.Errorf("update: entity is nil")
	}
	tr.line(plaintext.Entity(entity))
	s.mu.Lock()
	s.updated = append(s.updated, entity.Clone())
	s.mu.Unlock()
	return nil
}

// Delete marks the id as deleted. Deleting an unknown id is not an error.
func (s *FakeService) Delete(ctx context.Context, entityName string, id uuid.UUID) error {
	tr := newTrace("Delete entity")
	if err := ctx.Err(); err != nil {
		return s.fail("delete", tr, err)
	}
	s.delete(entityName, id, tr)
	s.done("delete", tr, "entity", entityName, "id", id)
	return nil
}

func (s *FakeService) delete(entityName string, id uuid.UUID, tr *trace) {
	tr.linef("EntityName = %s", entityName)
	tr.linef("ID = %s", id)
	s.mu.Lock()
	s.deleted = append(s.deleted, id)
	s.deletedSet[id] = struct{}{}
	s.mu.Unlock()
}

// Associate records the link request; no relationship data is stored.
func (s *FakeService) Associate(ctx context.Context, entityName string, id uuid.UUID, relationship core.Relationship, related core.EntityReferenceCollection) error {
	return s.associate(ctx, KindAssociate, entityName, id, relationship, related)
}

// Disassociate records the unlink request.
func (s *FakeService) Disassociate(ctx context.Context, entityName string, id uuid.UUID, relationship core.Relationship, related core.EntityReferenceCollection) error {
	return s.associate(ctx, KindDisassociate, entityName, id, relationship, related)
}

func (s *FakeService) associate(ctx context.Context, kind AssociationKind, entityName string, id uuid.UUID, relationship core.Relationship, related core.EntityReferenceCollection) error {
	op := strings.ToLower(string(kind))
	tr := newTrace(string(kind) + " entities")
	tr.linef("Entity = %s | %s", entityName, id)
	tr.linef("Relationship = %s", relationship.SchemaName)
	tr.line("Related Entities:")
	if len(related) > 0 {
		tr.line(plaintext.References(related, "    "))
	}
	if err := ctx.Err(); err != nil {
		return s.fail(op, tr, err)
	}

	s.mu.Lock()
	s.associations = append(s.associations, Association{
		Kind:         kind,
		EntityName:   entityName,
		EntityID:     id,
		Relationship: relationship,
		Related:      append(core.EntityReferenceCollection{}, related...),
	})
	s.mu.Unlock()

	s.done(op, tr, "entity", entityName, "id", id, "relationship", relationship.SchemaName, "related", len(related))
	return nil
}

// Close emits a final trace line. It never fails.
func (s *FakeService) Close() error {
	s.emit("Close organization.FakeService")
	s.logger.Debug("organization.close")
	return nil
}

// Interface compliance (compile-time assertions)
var (
	_ core.OrganizationService = (*FakeService)(nil)
	_ io.Closer                = (*FakeService)(nil)
)
