package types

// Persona states reported by ISteamUser/GetPlayerSummaries.
const (
	EPersonaStateOffline        = 0
	EPersonaStateOnline         = 1
	EPersonaStateBusy           = 2
	EPersonaStateAway           = 3
	EPersonaStateSnooze         = 4
	EPersonaStateLookingToTrade = 5
	EPersonaStateLookingToPlay  = 6
)

type PlayerSummariesResponse struct {
	Response PlayerSummariesResult `json:"response"`
}

type PlayerSummariesResult struct {
	Players []PlayerSummary `json:"players"`
}

type PlayerSummary struct {
	SteamId                  string   `json:"steamid"`
	CommunityVisibilityState int      `json:"communityvisibilitystate"`
	ProfileState             int      `json:"profilestate"`
	PersonaName              string   `json:"personaname"`
	ProfileUrl               string   `json:"profileurl"`
	Avatar                   string   `json:"avatar"`
	AvatarMedium             string   `json:"avatarmedium"`
	AvatarFull               string   `json:"avatarfull"`
	PersonaState             int      `json:"personastate"`
	RealName                 string   `json:"realname"`
	PrimaryClanId            string   `json:"primaryclanid"`
	TimeCreated              UnixTime `json:"timecreated"`
	LastLogoff               UnixTime `json:"lastlogoff"`
	LocCountryCode           string   `json:"loccountrycode"`
}

type VanityUrlResponse struct {
	Response VanityUrlResult `json:"response"`
}

type VanityUrlResult struct {
	Success int    `json:"success"`
	SteamId string `json:"steamid"`
	Message string `json:"message"`
}
