package organization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/plaintext"
)

// Execute records the request and serves it. A handler registered with
// Handle for the request name wins; otherwise the request is matched against
// the built-in shapes. Anything else fails with a *core.NotImplementedError.
func (s *FakeService) Execute(ctx context.Context, request core.OrganizationRequest) (*core.OrganizationResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("execute: request is nil")
	}
	s.mu.Lock()
	s.executed = append(s.executed, request)
	s.mu.Unlock()

	name := request.RequestName()
	tr := newTrace(requestTitle(name))
	if err := ctx.Err(); err != nil {
		return nil, s.fail("execute", tr, err)
	}

	resp, err := s.dispatch(ctx, request, tr, false)
	if err != nil {
		return nil, s.fail("execute", tr, err)
	}
	s.done("execute", tr, "request", name)
	return resp, nil
}

func (s *FakeService) dispatch(ctx context.Context, request core.OrganizationRequest, tr *trace, batched bool) (*core.OrganizationResponse, error) {
	if h, ok := s.handler(request.RequestName()); ok {
		tr.linef("Handled by registered %s handler", request.RequestName())
		return h(ctx, request)
	}

	switch req := request.(type) {
	case *core.RetrieveAttributeRequest:
		return s.retrieveAttribute(req)
	case *core.RetrieveEntityRequest:
		return s.retrieveEntity(req)
	case *core.RetrieveAllEntitiesRequest:
		return s.retrieveAllEntities()
	case *core.ExecuteMultipleRequest:
		if batched {
			return nil, &core.NotImplementedError{What: "nested ExecuteMultipleRequest"}
		}
		return s.executeMultiple(ctx, req, tr)
	case *core.SetStateRequest:
		tr.line(plaintext.SetStateRequest(req))
		return core.NewOrganizationResponse(req.RequestName()), nil
	case *core.CreateRequest:
		id, err := s.create(req.Target, tr)
		if err != nil {
			return nil, err
		}
		resp := core.NewOrganizationResponse(req.RequestName())
		resp.Results[core.ResultID] = id
		return resp, nil
	case *core.UpdateRequest:
		if err := s.update(req.Target, tr); err != nil {
			return nil, err
		}
		return core.NewOrganizationResponse(req.RequestName()), nil
	case *core.DeleteRequest:
		s.delete(req.Target.LogicalName, req.Target.ID, tr)
		return core.NewOrganizationResponse(req.RequestName()), nil
	default:
		return nil, &core.NotImplementedError{What: fmt.Sprintf("%T", request)}
	}
}

func (s *FakeService) retrieveAttribute(req *core.RetrieveAttributeRequest) (*core.OrganizationResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *core.AttributeMetadata
	for _, md := range s.attributeMetadata {
		if md.LogicalName != req.LogicalName {
			continue
		}
		if req.EntityLogicalName != "" && md.EntityLogicalName != "" && !strings.EqualFold(md.EntityLogicalName, req.EntityLogicalName) {
			continue
		}
		found = md
		break
	}
	if found == nil && req.EntityLogicalName != "" {
		for _, em := range s.entityMetadata {
			if strings.EqualFold(em.LogicalName, req.EntityLogicalName) {
				if md, ok := em.Attribute(req.LogicalName); ok {
					found = md
					break
				}
			}
		}
	}
	if found == nil {
		return nil, &core.MetadataNotFoundError{Kind: core.MetadataAttribute, LogicalName: req.LogicalName}
	}

	resp := core.NewOrganizationResponse(req.RequestName())
	resp.Results[core.ResultAttributeMetadata] = found
	return resp, nil
}

func (s *FakeService) retrieveEntity(req *core.RetrieveEntityRequest) (*core.OrganizationResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, md := range s.entityMetadata {
		if md.LogicalName == req.LogicalName {
			resp := core.NewOrganizationResponse(req.RequestName())
			resp.Results[core.ResultEntityMetadata] = md
			return resp, nil
		}
	}
	return nil, &core.MetadataNotFoundError{Kind: core.MetadataEntity, LogicalName: req.LogicalName}
}

func (s *FakeService) retrieveAllEntities() (*core.OrganizationResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := core.NewOrganizationResponse((&core.RetrieveAllEntitiesRequest{}).RequestName())
	resp.Results[core.ResultEntityMetadata] = append([]*core.EntityMetadata{}, s.entityMetadata...)
	return resp, nil
}

// executeMultiple serves each item in order. A failing item becomes a fault
// entry; the batch stops at the first fault unless ContinueOnError is set.
// Request shapes the fake cannot serve fail the whole call.
func (s *FakeService) executeMultiple(ctx context.Context, req *core.ExecuteMultipleRequest, tr *trace) (*core.OrganizationResponse, error) {
	items := make([]core.ExecuteMultipleResponseItem, 0, len(req.Requests))
	faulted := false
	for i, item := range req.Requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if item == nil {
			return nil, &core.NotImplementedError{What: fmt.Sprintf("nil request at index %d", i)}
		}
		tr.linef("[%d] %s", i, item.RequestName())
		resp, err := s.dispatch(ctx, item, tr, true)
		if err != nil {
			if isNotImplemented(err) {
				return nil, err
			}
			faulted = true
			items = append(items, core.ExecuteMultipleResponseItem{RequestIndex: i, Fault: err})
			if !req.Settings.ContinueOnError {
				break
			}
			continue
		}
		items = append(items, core.ExecuteMultipleResponseItem{RequestIndex: i, Response: resp})
	}

	resp := core.NewOrganizationResponse(req.RequestName())
	resp.Results[core.ResultResponses] = items
	resp.Results[core.ResultIsFaulted] = faulted
	return resp, nil
}

func isNotImplemented(err error) bool {
	var nie *core.NotImplementedError
	return errors.As(err, &nie)
}

// CreatedIDs returns the ids handed out by Create, in call order.
func (s *FakeService) CreatedIDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, len(s.created))
	for i, e := range s.created {
		ids[i] = e.ID
	}
	return ids
}
