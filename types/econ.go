package types

// Trade offer states reported by IEconService.
// See: https://steamapi.xpaw.me/#IEconService/GetTradeOffers
const (
	ETradeOfferStateInvalid           = 1
	ETradeOfferStateActive            = 2
	ETradeOfferStateAccepted          = 3
	ETradeOfferStateCountered         = 4
	ETradeOfferStateExpired           = 5
	ETradeOfferStateCanceled          = 6
	ETradeOfferStateDeclined          = 7
	ETradeOfferStateInvalidItems      = 8
	ETradeOfferStateNeedsConfirmation = 9
	ETradeOfferStateCanceledBySecond  = 10
	ETradeOfferStateInEscrow          = 11
)

type TradeOffersResponse struct {
	Response TradeOffersResult `json:"response"`
}

type TradeOffersResult struct {
	TradeOffersSent     []TradeOffer       `json:"trade_offers_sent"`
	TradeOffersReceived []TradeOffer       `json:"trade_offers_received"`
	Descriptions        []AssetDescription `json:"descriptions"`
}

type TradeOfferResponse struct {
	Response TradeOfferResult `json:"response"`
}

type TradeOfferResult struct {
	Offer        TradeOffer         `json:"offer"`
	Descriptions []AssetDescription `json:"descriptions"`
}

type TradeOffer struct {
	TradeOfferId      string       `json:"tradeofferid"`
	AccountIdOther    uint32       `json:"accountid_other"`
	Message           string       `json:"message"`
	ExpirationTime    UnixTime     `json:"expiration_time"`
	State             int          `json:"trade_offer_state"`
	ItemsToGive       []CEconAsset `json:"items_to_give"`
	ItemsToReceive    []CEconAsset `json:"items_to_receive"`
	IsOurOffer        bool         `json:"is_our_offer"`
	TimeCreated       UnixTime     `json:"time_created"`
	TimeUpdated       UnixTime     `json:"time_updated"`
	FromRealTimeTrade bool         `json:"from_real_time_trade"`
	EscrowEndDate     UnixTime     `json:"escrow_end_date"`
	ConfirmationMethod int         `json:"confirmation_method"`
}

// PartnerId returns the 64-bit id of the other party.
func (o TradeOffer) PartnerId() SteamId {
	return SteamIdFromAccountId(o.AccountIdOther)
}

type CEconAsset struct {
	AppId      uint32 `json:"appid"`
	ContextId  string `json:"contextid"`
	AssetId    string `json:"assetid"`
	CurrencyId string `json:"currencyid"`
	ClassId    string `json:"classid"`
	InstanceId string `json:"instanceid"`
	Amount     string `json:"amount"`
	Missing    bool   `json:"missing"`
}

type AssetDescription struct {
	AppId          uint32 `json:"appid"`
	ClassId        string `json:"classid"`
	InstanceId     string `json:"instanceid"`
	Currency       bool   `json:"currency"`
	IconUrl        string `json:"icon_url"`
	Name           string `json:"name"`
	MarketName     string `json:"market_name"`
	MarketHashName string `json:"market_hash_name"`
	Type           string `json:"type"`
	Tradable       bool   `json:"tradable"`
	Marketable     bool   `json:"marketable"`
}

type TradeOffersSummaryResponse struct {
	Response TradeOffersSummary `json:"response"`
}

type TradeOffersSummary struct {
	PendingReceivedCount     int `json:"pending_received_count"`
	NewReceivedCount         int `json:"new_received_count"`
	UpdatedReceivedCount     int `json:"updated_received_count"`
	HistoricalReceivedCount  int `json:"historical_received_count"`
	PendingSentCount         int `json:"pending_sent_count"`
	NewlyAcceptedSentCount   int `json:"newly_accepted_sent_count"`
	UpdatedSentCount         int `json:"updated_sent_count"`
	HistoricalSentCount      int `json:"historical_sent_count"`
	EscrowReceivedCount      int `json:"escrow_received_count"`
	EscrowSentCount          int `json:"escrow_sent_count"`
}
