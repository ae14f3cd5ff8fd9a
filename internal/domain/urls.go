package domain

import (
	"fmt"
	"net/url"
)

// URLBuilder derives the externally visible URLs for a link token.
// Output is part of the public contract: previously issued links must keep resolving.
type URLBuilder struct {
	Domain string
}

// NewURLBuilder returns a builder for the given domain, falling back to the default domain
func NewURLBuilder(domain string) URLBuilder {
	if domain == "" {
		domain = DEFAULT_SHARE_DOMAIN
	}
	return URLBuilder{Domain: domain}
}

// InviteURL returns https://<domain>/invite/<token>
func (b URLBuilder) InviteURL(token string) string {
	return fmt.Sprintf("https://%s/invite/%s", b.Domain, token)
}

// PublicShareURL returns https://<domain>/share/<token>
func (b URLBuilder) PublicShareURL(token string) string {
	return fmt.Sprintf("https://%s/share/%s", b.Domain, token)
}

// QRDataURL returns https://<domain>/qr/<token>
func (b URLBuilder) QRDataURL(token string) string {
	return fmt.Sprintf("https://%s/qr/%s", b.Domain, token)
}

// OnboardingURL returns https://<domain>/onboarding?ref_type=qr&ref_token=<token>
func (b URLBuilder) OnboardingURL(token string) string {
	return fmt.Sprintf("https://%s/onboarding?ref_type=qr&ref_token=%s", b.Domain, url.QueryEscape(token))
}

// Apply sets the derived URL fields of a link from its type and token
func (b URLBuilder) Apply(link *SharingLink) {
	switch link.LinkType {
	case LinkTypePublic:
		link.ShareURL = b.PublicShareURL(link.UniqueToken)
	case LinkTypeQR:
		link.QRDataURL = b.QRDataURL(link.UniqueToken)
	default:
		link.ShareURL = b.InviteURL(link.UniqueToken)
	}
}
