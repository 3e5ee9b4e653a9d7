package auth

import (
	"github.com/spec-kit/board-service/internal/domain"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// Authorize enforces the ownership contract: only the creating user may
// mutate an owned resource. It is a pure predicate over the Owned
// capability; callers fetch the resource first, so a failure here means
// the resource exists but belongs to someone else.
func Authorize(resource domain.Owned, requesterID int64) error {
	if resource.OwnerID() != requesterID {
		return apperrors.NewForbidden("you do not own this resource")
	}
	return nil
}
