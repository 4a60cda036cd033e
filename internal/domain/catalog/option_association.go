package catalog

import (
	"github.com/google/uuid"
)

// OptionAssociation links one CustomerOption to one OptionGroup.
// The option and the group both hold the same pointer; the association lives
// as long as either side still references it. In storage it is a row of the
// customer_option_associations relation table.
type OptionAssociation struct {
	ID       uuid.UUID
	Position int
	Option   *CustomerOption
	Group    *OptionGroup
}

// NewOptionAssociation creates an unlinked association
func NewOptionAssociation() *OptionAssociation {
	return &OptionAssociation{ID: uuid.New()}
}

// OptionCode returns the linked option's code, or "" when unlinked
func (a *OptionAssociation) OptionCode() string {
	if a.Option == nil {
		return ""
	}
	return a.Option.Code
}

// IsLinked reports whether both sides are set
func (a *OptionAssociation) IsLinked() bool {
	return a.Option != nil && a.Group != nil
}
