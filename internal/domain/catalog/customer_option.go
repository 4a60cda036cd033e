package catalog

import (
	"github.com/erp/customeroptions/internal/domain/shared"
)

// CustomerOptionType represents how a customer option is answered
type CustomerOptionType string

const (
	CustomerOptionTypeSelect      CustomerOptionType = "select"
	CustomerOptionTypeMultiSelect CustomerOptionType = "multi_select"
	CustomerOptionTypeText        CustomerOptionType = "text"
	CustomerOptionTypeBoolean     CustomerOptionType = "boolean"
	CustomerOptionTypeNumber      CustomerOptionType = "number"
	CustomerOptionTypeDate        CustomerOptionType = "date"
)

// IsValid checks if the option type is known
func (t CustomerOptionType) IsValid() bool {
	switch t {
	case CustomerOptionTypeSelect, CustomerOptionTypeMultiSelect, CustomerOptionTypeText,
		CustomerOptionTypeBoolean, CustomerOptionTypeNumber, CustomerOptionTypeDate:
		return true
	}
	return false
}

// CustomerOption is a configurable product attribute offered to customers,
// e.g. "lens coating". It keeps back-references to the groups it belongs to.
type CustomerOption struct {
	shared.BaseEntity
	Code              string
	Name              string
	Type              CustomerOptionType
	Required          bool
	GroupAssociations []*OptionAssociation
}

// NewCustomerOption creates a new customer option
func NewCustomerOption(code, name string, optionType CustomerOptionType) (*CustomerOption, error) {
	if err := validateCode("Customer option", code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer option name cannot be empty")
	}
	if !optionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown customer option type: "+string(optionType))
	}

	return &CustomerOption{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Type:       optionType,
	}, nil
}

// SetRequired marks whether customers must answer the option
func (o *CustomerOption) SetRequired(required bool) {
	o.Required = required
	o.Touch()
}

// AddGroupAssociation registers an association on the option side.
// Adding the same association twice is a no-op.
func (o *CustomerOption) AddGroupAssociation(assoc *OptionAssociation) {
	if assoc == nil || o.HasGroupAssociation(assoc) {
		return
	}
	assoc.Option = o
	o.GroupAssociations = append(o.GroupAssociations, assoc)
}

// RemoveGroupAssociation drops an association from the option side only
func (o *CustomerOption) RemoveGroupAssociation(assoc *OptionAssociation) {
	for i, a := range o.GroupAssociations {
		if a == assoc {
			o.GroupAssociations = append(o.GroupAssociations[:i], o.GroupAssociations[i+1:]...)
			return
		}
	}
}

// HasGroupAssociation checks if the association is registered on this option
func (o *CustomerOption) HasGroupAssociation(assoc *OptionAssociation) bool {
	for _, a := range o.GroupAssociations {
		if a == assoc {
			return true
		}
	}
	return false
}

// Groups returns the groups this option is associated with
func (o *CustomerOption) Groups() []*OptionGroup {
	groups := make([]*OptionGroup, 0, len(o.GroupAssociations))
	for _, a := range o.GroupAssociations {
		if a.Group != nil {
			groups = append(groups, a.Group)
		}
	}
	return groups
}
