package core

import "github.com/google/uuid"

// Result keys used by the responses the fake service builds.
const (
	ResultAttributeMetadata = "AttributeMetadata"
	ResultEntityMetadata    = "EntityMetadata"
	ResultID                = "id"
	ResultResponses         = "Responses"
	ResultIsFaulted         = "IsFaulted"
)

// OrganizationResponse is the result of Execute. Results is keyed the same
// way the platform keys response properties.
type OrganizationResponse struct {
	ResponseName string
	Results      ParameterCollection
}

// NewOrganizationResponse creates a response with an empty result bag.
func NewOrganizationResponse(name string) *OrganizationResponse {
	return &OrganizationResponse{ResponseName: name, Results: ParameterCollection{}}
}

// AttributeMetadata returns the RetrieveAttribute result, if any.
func (r *OrganizationResponse) AttributeMetadata() (*AttributeMetadata, bool) {
	md, ok := r.Results[ResultAttributeMetadata].(*AttributeMetadata)
	return md, ok
}

// EntityMetadata returns the RetrieveEntity result, if any.
func (r *OrganizationResponse) EntityMetadata() (*EntityMetadata, bool) {
	md, ok := r.Results[ResultEntityMetadata].(*EntityMetadata)
	return md, ok
}

// EntityMetadataList returns the RetrieveAllEntities result, if any.
func (r *OrganizationResponse) EntityMetadataList() ([]*EntityMetadata, bool) {
	md, ok := r.Results[ResultEntityMetadata].([]*EntityMetadata)
	return md, ok
}

// ID returns the id of a Create response.
func (r *OrganizationResponse) ID() (uuid.UUID, bool) {
	id, ok := r.Results[ResultID].(uuid.UUID)
	return id, ok
}

// Responses returns the ExecuteMultiple per-item results.
func (r *OrganizationResponse) Responses() ([]ExecuteMultipleResponseItem, bool) {
	items, ok := r.Results[ResultResponses].([]ExecuteMultipleResponseItem)
	return items, ok
}

// ExecuteMultipleResponseItem is the outcome of one batched request.
// Fault is nil when the item succeeded.
type ExecuteMultipleResponseItem struct {
	RequestIndex int
	Response     *OrganizationResponse
	Fault        error
}
