package acquisitor

import (
	"database/sql"
	"strings"
	"time"

	"github.com/chanchavia/acquisitor/pkgs/clients/twitterclient"
	"github.com/chanchavia/acquisitor/pkgs/model"
)

// getOrCreateUser resolves the canonical user row for an API user:
// twitter id first, handle second, so every ingestion path shares one
// identity per remote account. The profile location is resolved only
// on first creation; an unresolved location leaves city_id NULL.
func (a *Acquisitor) getOrCreateUser(apiUser *twitterclient.User) (*model.User, error) {
	usr, err := a.userRepo.GetByTwitterId(a.db, apiUser.TwitterId)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		usr, err = a.userRepo.GetByHandle(a.db, apiUser.ScreenName)
		if err != nil {
			return nil, err
		}
	}
	if usr != nil {
		return usr, nil
	}

	usr = &model.User{
		TwitterId:       apiUser.TwitterId,
		Handle:          apiUser.ScreenName,
		Name:            apiUser.Name,
		Description:     apiUser.Description,
		CreatedAt:       apiUser.CreatedAt,
		FollowersCount:  apiUser.FollowersCount,
		FollowingCount:  apiUser.FriendsCount,
		FavouritesCount: apiUser.FavouritesCount,
		StatusesCount:   apiUser.StatusesCount,
	}

	if apiUser.Status != nil {
		days := int64(time.Since(apiUser.Status.CreatedAt).Hours() / 24)
		if days < 0 {
			days = -days
		}
		usr.DaysSinceTweet = sql.NullInt64{Int64: days, Valid: true}
	}

	if strings.TrimSpace(apiUser.Location) != "" {
		city, err := a.resolver.ResolvePlace(a.db, apiUser.Location)
		if err != nil {
			return nil, err
		}
		if city != nil {
			usr.CityId = sql.NullInt64{Int64: city.Id, Valid: true}
		}
	}

	if err := a.userRepo.Create(a.db, usr); err != nil {
		return nil, err
	}
	return usr, nil
}
