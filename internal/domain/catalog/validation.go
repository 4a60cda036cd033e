package catalog

import (
	"fmt"

	"github.com/erp/customeroptions/internal/domain/shared"
)

const maxCodeLength = 64

// validateCode checks a catalog code: non-empty, bounded, and made of
// letters, digits, underscores, hyphens and dots
func validateCode(entity, code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", entity+" code cannot be empty")
	}
	if len(code) > maxCodeLength {
		return shared.NewDomainError("INVALID_CODE", fmt.Sprintf("%s code cannot exceed %d characters", entity, maxCodeLength))
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.') {
			return shared.NewDomainError("INVALID_CODE", entity+" code can only contain letters, numbers, underscores, hyphens, and dots")
		}
	}
	return nil
}
