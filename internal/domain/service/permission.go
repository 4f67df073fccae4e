package service

import (
	"github.com/google/uuid"
)

// Allowed is the ownership predicate shared by the orchestrator and the
// connection router. A caller may act on a resource they own; ownerless
// resources are shared and open to everyone only when allowShared is set.
func Allowed(resourceOwner *uuid.UUID, caller uuid.UUID, allowShared bool) bool {
	if resourceOwner == nil {
		return allowShared
	}

	return *resourceOwner == caller
}
