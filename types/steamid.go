package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SteamId is a 64-bit Steam identifier.
//
// The Web API and trade endpoints disagree on representation: IEconService
// reports the other party as a 32-bit account id, community pages use the
// 64-bit form, and profile URLs may carry the legacy "STEAM_X:Y:Z" form.
// The conversions below follow the SteamID spec:
// https://developer.valvesoftware.com/wiki/SteamID
type SteamId uint64

// individual account universe/type/instance prefix for 64-bit ids
const steamId64Base uint64 = 0x0110000100000000

func (s SteamId) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// AccountId returns the low 32 bits, the form IEconService uses
// in accountid_other.
func (s SteamId) AccountId() uint32 {
	return uint32(uint64(s) & 0xFFFFFFFF)
}

// Steam2 renders the legacy "STEAM_0:Y:Z" textual form.
func (s SteamId) Steam2() string {
	accountId := uint64(s.AccountId())
	return fmt.Sprintf("STEAM_0:%d:%d", accountId&1, accountId>>1)
}

// SteamIdFromAccountId lifts a 32-bit account id into the 64-bit space
// of an individual account.
func SteamIdFromAccountId(accountId uint32) SteamId {
	return SteamId(steamId64Base + uint64(accountId))
}

// ParseSteamId accepts a 64-bit decimal id or the legacy
// "STEAM_X:Y:Z" form.
func ParseSteamId(s string) (SteamId, bool) {
	if strings.HasPrefix(s, "STEAM_") {
		parts := strings.Split(strings.TrimPrefix(s, "STEAM_"), ":")
		if len(parts) != 3 {
			return 0, false
		}
		y, errY := strconv.ParseUint(parts[1], 10, 1)
		z, errZ := strconv.ParseUint(parts[2], 10, 31)
		if errY != nil || errZ != nil {
			return 0, false
		}
		return SteamIdFromAccountId(uint32(z<<1 | y)), true
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id < steamId64Base {
		return 0, false
	}
	return SteamId(id), true
}
