package acquisitor

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Follow sends a follow request to every user id, collecting per-id
// failures instead of stopping at the first one.
func (a *Acquisitor) Follow(ctx context.Context, ids []uint64) error {
	logger := a.logger("Acquisitor.Follow")

	var errs *multierror.Error
	for _, id := range ids {
		if err := a.client.DoFollowByUserId(ctx, id); err != nil {
			logger.WithError(err).Errorf("failed to follow user %d", id)
			errs = multierror.Append(errs, fmt.Errorf("follow %d: %w", id, err))
		}
	}
	return errs.ErrorOrNil()
}

// Unfollow removes the friendship with every user id, collecting
// per-id failures instead of stopping at the first one.
func (a *Acquisitor) Unfollow(ctx context.Context, ids []uint64) error {
	logger := a.logger("Acquisitor.Unfollow")

	var errs *multierror.Error
	for _, id := range ids {
		if err := a.client.DoUnfollowByUserId(ctx, id); err != nil {
			logger.WithError(err).Errorf("failed to unfollow user %d", id)
			errs = multierror.Append(errs, fmt.Errorf("unfollow %d: %w", id, err))
		}
	}
	return errs.ErrorOrNil()
}
