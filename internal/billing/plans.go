// Package billing provides the static subscription plan catalog.
package billing

import "arkadasai/internal/types"

// PlanCatalog is the read-only source of plan descriptors shown to clients.
type PlanCatalog interface {
	// List returns the fixed plan descriptors, always in the same order:
	// Free, Plus, Pro.
	List() []types.PlanDescriptor
}

// staticPlanCatalog is a compile-time catalog backed by an ordered slice.
// It implements PlanCatalog and is the standard implementation; no database
// or external service is involved.
type staticPlanCatalog struct {
	plans []types.PlanDescriptor
}

// planDefaults defines the three plan descriptors offered by the demo.
// Exactly these entries, in this order, are returned to every caller.
var planDefaults = []types.PlanDescriptor{
	{ID: "free", Name: "Free", Desc: "Basic chat, limited usage", Price: "₺0"},
	{ID: "plus", Name: "Plus", Desc: "Faster replies, longer context", Price: "₺199/ay"},
	{ID: "pro", Name: "Pro", Desc: "Priority latency, enterprise features", Price: "₺499/ay"},
}

// NewStaticPlanCatalog returns a PlanCatalog backed by the hardcoded plan
// descriptors.
func NewStaticPlanCatalog() PlanCatalog {
	// Copy the defaults so callers cannot mutate the package-level variable.
	plans := make([]types.PlanDescriptor, len(planDefaults))
	copy(plans, planDefaults)
	return &staticPlanCatalog{plans: plans}
}

// List returns the catalog entries in their fixed order. The returned slice
// is a fresh copy on every call.
func (c *staticPlanCatalog) List() []types.PlanDescriptor {
	plans := make([]types.PlanDescriptor, len(c.plans))
	copy(plans, c.plans)
	return plans
}
