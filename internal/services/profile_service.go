package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/socialhax/socialhax/internal/models"
	"github.com/socialhax/socialhax/internal/platform"
	"github.com/socialhax/socialhax/internal/utils"
)

// Курс конвертации цен для страницы оформления.
var pkrToUSDRate = decimal.RequireFromString("278.5")

// Цены по умолчанию в PKR.
const (
	defaultInstantPrice = "50000.00"
	defaultPartialPrice = "15000.00"
)

// ProfileStats - сырые значения показателей из строки запроса.
type ProfileStats struct {
	Followers string
	Following string
	Posts     string
}

// ProfileService строит проекции профиля цели и прайса оформления.
type ProfileService interface {
	Profile(ctx context.Context, slug, username string, stats ProfileStats) models.Profile
	Quote(slug, instantRaw, partialRaw string) models.Quote
	StorePicture(ctx context.Context, dataURI string)
	TakePicture(ctx context.Context) (string, error)
}

// ProfileServiceImpl реализует ProfileService.
type ProfileServiceImpl struct {
	pics ProfilePicStorage
}

// NewProfileService создаёт сервис профиля.
func NewProfileService(pics ProfilePicStorage) *ProfileServiceImpl {
	return &ProfileServiceImpl{pics: pics}
}

// Profile собирает карточку "найденного" профиля: подписи показателей
// берутся из реестра платформ, нечисловые значения считаются
// отсутствующими, аватар выдаётся из одноразового слота либо подменяется
// заглушкой по имени пользователя.
func (s *ProfileServiceImpl) Profile(ctx context.Context, slug, username string, stats ProfileStats) models.Profile {
	p := platform.Lookup(slug)

	profile := models.Profile{
		Username: username,
		Platform: p.Name,
		Slug:     p.Slug,
		Logo:     p.Logo,
	}

	if p.ProfilePicture {
		if pic, err := s.pics.Take(ctx); err == nil {
			profile.AvatarURL = pic
		} else {
			profile.AvatarURL = "https://i.pravatar.cc/128?u=" + username
		}
	}

	if p.HasStats {
		profile.Stats = appendStat(profile.Stats, p.Labels.Followers, stats.Followers)
		profile.Stats = appendStat(profile.Stats, p.Labels.Following, stats.Following)
		profile.Stats = appendStat(profile.Stats, p.Labels.Posts, stats.Posts)
	}

	return profile
}

// Quote возвращает прайс для платформы. Переданные переопределения цен
// нормализуются к двум знакам, нечисловые игнорируются в пользу
// значений по умолчанию.
func (s *ProfileServiceImpl) Quote(slug, instantRaw, partialRaw string) models.Quote {
	p := platform.Lookup(slug)

	return models.Quote{
		Platform: p.Name,
		Slug:     p.Slug,
		Instant:  quoteOption(models.OrderTypeInstant, instantRaw, defaultInstantPrice),
		Partial:  quoteOption(models.OrderTypePartial, partialRaw, defaultPartialPrice),
	}
}

// StorePicture кладёт data URI аватара в одноразовый слот.
func (s *ProfileServiceImpl) StorePicture(ctx context.Context, dataURI string) {
	s.pics.Put(ctx, dataURI)
}

// TakePicture забирает аватар из одноразового слота.
func (s *ProfileServiceImpl) TakePicture(ctx context.Context) (string, error) {
	return s.pics.Take(ctx)
}

// appendStat добавляет показатель, если его значение распознано как число.
func appendStat(stats []models.ProfileStat, label, raw string) []models.ProfileStat {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return stats
	}
	return append(stats, models.ProfileStat{Label: label, Value: utils.FormatCount(n)})
}

// quoteOption строит вариант оплаты с ценой в PKR и USD.
func quoteOption(t models.OrderType, rawOverride, fallback string) models.QuoteOption {
	pkr := fallback
	if strings.TrimSpace(rawOverride) != "" {
		if normalized, err := utils.NormalizeAmount(rawOverride); err == nil {
			pkr = normalized
		}
	}

	d, _ := decimal.NewFromString(pkr)
	return models.QuoteOption{
		Type:     t,
		PricePKR: pkr,
		PriceUSD: d.Div(pkrToUSDRate).StringFixed(2),
	}
}
