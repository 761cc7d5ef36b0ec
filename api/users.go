package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/Black4Blade/CSharpTradeOffers/errors"
	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/types"
	"github.com/Black4Blade/CSharpTradeOffers/web"
)

var (
	PathGetPlayerSummaries = "ISteamUser/GetPlayerSummaries/v2/"
	PathResolveVanityUrl   = "ISteamUser/ResolveVanityURL/v1/"
)

// SteamUsers implements a set of ISteamUser API methods,
// See: https://steamapi.xpaw.me/#ISteamUser
type SteamUsers struct {
	api *apiClient
}

func NewSteamUsersApi(
	apiKey string,
	fetcher *web.Fetcher,
	logger logger.Logger,
	opts ...Option,
) *SteamUsers {
	return &SteamUsers{
		api: newApiClient(apiKey, fetcher, logger, opts...),
	}
}

// GetPlayerSummaries resolves up to 100 ids per call (ISteamUser limit;
// longer slices are rejected by Steam, not split here).
func (u *SteamUsers) GetPlayerSummaries(ctx context.Context, ids []types.SteamId) ([]types.PlayerSummary, error) {
	strIds := make([]string, 0, len(ids))
	for _, id := range ids {
		strIds = append(strIds, id.String())
	}

	params := url.Values{}
	params.Add("steamids", strings.Join(strIds, ","))

	var res types.PlayerSummariesResponse
	return toNilErr(res.Response.Players, u.api.getJson(ctx, PathGetPlayerSummaries, params, &res))
}

// ResolveVanityUrl turns a community vanity name into a SteamId.
// The second return value is false when no account has that name.
func (u *SteamUsers) ResolveVanityUrl(ctx context.Context, vanityName string) (types.SteamId, bool, error) {
	params := url.Values{}
	params.Add("vanityurl", vanityName)

	var res types.VanityUrlResponse
	err := u.api.getJson(ctx, PathResolveVanityUrl, params, &res)
	if err != nil {
		if err.EResult == errors.EResultNoMatch {
			return 0, false, nil
		}
		return 0, false, err
	}

	id, ok := types.ParseSteamId(res.Response.SteamId)
	if !ok {
		return 0, false, &errors.ApiError{
			Stage: errors.STAGE_AFTER_REQUEST,
			Type:  errors.TYPE_INVALID_DATA,
			Body:  []byte(res.Response.SteamId),
		}
	}
	return id, true, nil
}
