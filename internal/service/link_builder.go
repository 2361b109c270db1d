package service

import (
	"net/url"
	"strings"
	"time"

	"github.com/avc-dev/referral-service/internal/config"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/google/uuid"
)

const slugLength = 11

// LinkBuilder формирует реферальные ссылки вида <base><slug>?referral_code=...&share_method=...
type LinkBuilder struct {
	base config.URLPrefix
}

func NewLinkBuilder(base config.URLPrefix) *LinkBuilder {
	return &LinkBuilder{base: base}
}

// Build создает запись о новой ссылке со свежим slug
func (b *LinkBuilder) Build(referrer model.Referrer, method model.ShareMethod, now time.Time) model.LinkRecord {
	id := uuid.New()
	slug := strings.ReplaceAll(id.String(), "-", "")[:slugLength]

	query := url.Values{}
	query.Set("referral_code", referrer.Code.String())
	query.Set("share_method", method.String())

	return model.LinkRecord{
		ID:          id.String(),
		UserID:      referrer.UserID,
		Code:        referrer.Code,
		ShareMethod: method,
		URL:         b.base.String() + slug + "?" + query.Encode(),
		CreatedAt:   now,
	}
}
