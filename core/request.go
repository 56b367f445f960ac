package core

import "github.com/google/uuid"

// OrganizationRequest is a message sent through OrganizationService.Execute.
// RequestName returns the platform message name ("Create", "SetState", ...).
type OrganizationRequest interface {
	RequestName() string
}

// RetrieveAttributeRequest asks for the metadata of one attribute.
type RetrieveAttributeRequest struct {
	EntityLogicalName string
	LogicalName       string
	MetadataID        uuid.UUID
}

// RequestName implements OrganizationRequest.
func (*RetrieveAttributeRequest) RequestName() string { return "RetrieveAttribute" }

// RetrieveEntityRequest asks for the metadata of one entity.
type RetrieveEntityRequest struct {
	LogicalName string
	MetadataID  uuid.UUID
}

// RequestName implements OrganizationRequest.
func (*RetrieveEntityRequest) RequestName() string { return "RetrieveEntity" }

// RetrieveAllEntitiesRequest asks for the metadata of every entity.
type RetrieveAllEntitiesRequest struct{}

// RequestName implements OrganizationRequest.
func (*RetrieveAllEntitiesRequest) RequestName() string { return "RetrieveAllEntities" }

// ExecuteMultipleSettings controls batch behavior. With ContinueOnError a
// failing item is reported as a fault and the batch goes on.
type ExecuteMultipleSettings struct {
	ContinueOnError bool
}

// ExecuteMultipleRequest runs a batch of requests.
type ExecuteMultipleRequest struct {
	Requests []OrganizationRequest
	Settings ExecuteMultipleSettings
}

// RequestName implements OrganizationRequest.
func (*ExecuteMultipleRequest) RequestName() string { return "ExecuteMultiple" }

// CreateRequest creates the target record.
type CreateRequest struct {
	Target *Entity
}

// RequestName implements OrganizationRequest.
func (*CreateRequest) RequestName() string { return "Create" }

// UpdateRequest updates the target record.
type UpdateRequest struct {
	Target *Entity
}

// RequestName implements OrganizationRequest.
func (*UpdateRequest) RequestName() string { return "Update" }

// DeleteRequest deletes the referenced record.
type DeleteRequest struct {
	Target EntityReference
}

// RequestName implements OrganizationRequest.
func (*DeleteRequest) RequestName() string { return "Delete" }

// SetStateRequest changes the state and status reason of a record.
type SetStateRequest struct {
	EntityMoniker EntityReference
	State         OptionSetValue
	Status        OptionSetValue
}

// RequestName implements OrganizationRequest.
func (*SetStateRequest) RequestName() string { return "SetState" }

// GenericRequest carries any message by name, for custom actions and
// messages the fake has no typed shape for.
type GenericRequest struct {
	Name       string
	Parameters ParameterCollection
}

// NewGenericRequest creates a named request with empty parameters.
func NewGenericRequest(name string) *GenericRequest {
	return &GenericRequest{Name: name, Parameters: ParameterCollection{}}
}

// RequestName implements OrganizationRequest.
func (r *GenericRequest) RequestName() string { return r.Name }
