package domain

const (
	// DEFAULT_SHARE_DOMAIN is the host used to build share, invite, qr and onboarding URLs
	DEFAULT_SHARE_DOMAIN = "traittune.com"

	// DEFAULT_PUBLIC_REFERRAL_BONUS is the number of tokens credited to a sharer when
	// a recipient completes the test through a public link
	DEFAULT_PUBLIC_REFERRAL_BONUS int64 = 10
)
