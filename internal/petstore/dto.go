package petstore

import (
	"time"

	"github.com/vitalvas/swagdoc/schema"
)

// Pet statuses.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

type Category struct {
	ID   int64  `json:"id" swagger:"example=1"`
	Name string `json:"name" swagger:"example=Dogs"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Pet struct {
	ID        int64     `json:"id" swagger:"example=10"`
	Name      string    `json:"name" swagger:"description=Pet name,example=doggie,required"`
	Category  *Category `json:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    string    `json:"status" swagger:"description=Pet status in the store,example=available"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPet is the request body for creating a pet.
type NewPet struct {
	Name      string    `json:"name" swagger:"example=doggie,required"`
	Category  *Category `json:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    string    `json:"status"`
}

// PetID addresses one pet by path.
type PetID struct {
	PetID int64 `json:"petId" swagger:"description=ID of pet,required"`
}

// StatusFilter selects pets by status.
type StatusFilter struct {
	Status string `json:"status" swagger:"description=Status values to filter by,example=available"`
	Limit  int32  `json:"limit" swagger:"description=Maximum number of pets returned"`
}

// PetList is the response of the pet listing.
type PetList struct {
	Items []Pet `json:"items"`
	Total int   `json:"total"`
}

// APIResponse is the common envelope of status responses.
type APIResponse struct {
	Type string `json:"type"`
}

// ErrorResponse extends APIResponse with an error code and message.
type ErrorResponse struct {
	APIResponse
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Register declares every DTO served by the pet store in reg.
func Register(reg *schema.Registry) {
	reg.Register(Pet{})
	reg.Register(NewPet{})
	reg.Register(PetID{})
	reg.Register(StatusFilter{})
	reg.Register(PetList{})
	reg.Register(ErrorResponse{})

	// Enumerations cannot be derived from the Go type.
	reg.RegisterField(StatusFilter{}, "status", schema.Field{
		Type:        schema.TypeString,
		Description: "Status values to filter by: " + StatusAvailable + ", " + StatusPending + " or " + StatusSold,
		Example:     StatusAvailable,
	})
}
