// Package types defines the shared domain model, error types, and context
// helpers for the ArkadasAI demo API.
package types

// PlanTier represents a subscription plan level attached to a user.
// The canonical capitalized form is what gets stored and serialized.
type PlanTier string

const (
	PlanFree PlanTier = "Free"
	PlanPlus PlanTier = "Plus"
	PlanPro  PlanTier = "Pro"
)

// User is the in-memory user record. Email is the unique key; ID is assigned
// sequentially at creation and is stable for the process lifetime. Only Plan
// is ever mutated after creation (by purchase confirmation).
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Plan  PlanTier `json:"plan"`
}

// PlanDescriptor is one entry of the static plan catalog. Descriptors are
// defined at startup and never mutated.
type PlanDescriptor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Price string `json:"price"`
}
