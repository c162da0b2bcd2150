package acquisitor

import (
	"context"
	"fmt"

	"github.com/chanchavia/acquisitor/pkgs/model"
	log "github.com/sirupsen/logrus"
)

// RegisterFollowers records every follower of the given handle and the
// follower edges pointing at it. Already-known users and edges are
// skipped, so re-running against the same seed is idempotent.
func (a *Acquisitor) RegisterFollowers(ctx context.Context, handle string) error {
	logger := a.logger("Acquisitor.RegisterFollowers").WithField("handle", handle)

	seed, err := a.client.GetUserByScreenName(ctx, handle)
	if err != nil {
		return fmt.Errorf("failed to look up seed user [%s]: %w", handle, err)
	}
	followed, err := a.getOrCreateUser(seed)
	if err != nil {
		return err
	}

	processed, created := 0, 0
	cursor := int64(-1)
	for {
		page, next, err := a.client.ListFollowers(ctx, handle, cursor)
		if err != nil {
			return fmt.Errorf("failed to page followers of [%s]: %w", handle, err)
		}
		if len(page) == 0 {
			break
		}

		for _, apiUser := range page {
			follower, err := a.getOrCreateUser(apiUser)
			if err != nil {
				return err
			}

			edge, err := a.followerRepo.Get(a.db, follower.Id, followed.Id)
			if err != nil {
				return err
			}
			if edge == nil {
				edge = &model.Follower{FollowerId: follower.Id, FollowedId: followed.Id}
				if err := a.followerRepo.Create(a.db, edge); err != nil {
					return err
				}
				created++
			}
			processed++
		}

		if next == 0 {
			break
		}
		cursor = next
	}

	logger.WithFields(log.Fields{
		"processed": processed,
		"new_edges": created,
	}).Infoln("followers are registered")
	return nil
}
