package models

// ProfileStat - один показатель профиля с подписью платформы.
type ProfileStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Profile - проекция "найденного" профиля для страницы цели.
type Profile struct {
	Username  string        `json:"username"`
	Platform  string        `json:"platform"`
	Slug      string        `json:"slug"`
	Logo      string        `json:"logo"`
	AvatarURL string        `json:"avatar_url,omitempty"`
	Stats     []ProfileStat `json:"stats,omitempty"`
}

// QuoteOption - цена одного варианта оплаты в двух валютах.
type QuoteOption struct {
	Type     OrderType `json:"type"`
	PricePKR string    `json:"price_pkr"`
	PriceUSD string    `json:"price_usd"`
}

// Quote - прайс для страницы оформления заказа.
type Quote struct {
	Platform string      `json:"platform"`
	Slug     string      `json:"slug"`
	Instant  QuoteOption `json:"instant"`
	Partial  QuoteOption `json:"partial"`
}

// ProfilePicRequest - загрузка аватара в одноразовый слот.
type ProfilePicRequest struct {
	DataURI string `json:"data_uri"`
}

// ProfilePicResponse - выдача аватара из одноразового слота.
type ProfilePicResponse struct {
	DataURI string `json:"data_uri"`
}
