package pluralkit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Privacy controls who can see a resource or one of its fields.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// IsValid returns true if the value is a known privacy level.
func (p Privacy) IsValid() bool {
	switch p {
	case PrivacyPublic, PrivacyPrivate:
		return true
	default:
		return false
	}
}

// ProxyTagLimit is the combined byte budget for a proxy tag's prefix and
// suffix. The service defines the limit on the pair, not per fragment.
const ProxyTagLimit = 100

// ErrProxyTagLimit indicates a prefix and suffix whose combined length
// exceeds [ProxyTagLimit].
var ErrProxyTagLimit = errors.New("proxy tags must not exceed 100 total characters")

// ProxyTag is a prefix/suffix pair used to match proxied messages.
// Either fragment may be absent.
type ProxyTag struct {
	Prefix *string `json:"prefix"`
	Suffix *string `json:"suffix"`
}

// NewProxyTag validates the combined length of prefix and suffix against
// [ProxyTagLimit] and keeps both fragments exactly as passed.
func NewProxyTag(prefix, suffix *string) (ProxyTag, error) {
	total := 0
	if prefix != nil {
		total += len(*prefix)
	}
	if suffix != nil {
		total += len(*suffix)
	}
	if total > ProxyTagLimit {
		return ProxyTag{}, ErrProxyTagLimit
	}
	return ProxyTag{Prefix: prefix, Suffix: suffix}, nil
}

// Member is a member of a system, as the API returns it. Bounded fields
// decode through their checked parsers, so a response field over its
// limit fails the decode instead of being silently truncated.
type Member struct {
	ID                   ShortID                 `json:"id"`
	UUID                 uuid.UUID               `json:"uuid"`
	SystemID             ShortID                 `json:"system"`
	Name                 BoundedString[Max100]   `json:"name"`
	DisplayName          *BoundedString[Max100]  `json:"display_name"`
	Color                *Color                  `json:"color"`
	Birthday             *time.Time              `json:"birthday"`
	Pronouns             *BoundedString[Max100]  `json:"pronouns"`
	Avatar               *BoundedURL[Max256]     `json:"avatar_url"`
	WebhookAvatar        *BoundedURL[Max256]     `json:"webhook_avatar_url"`
	Banner               *BoundedURL[Max256]     `json:"banner"`
	Description          *BoundedString[Max1000] `json:"description"`
	Created              *time.Time              `json:"created"`
	ProxyTags            []ProxyTag              `json:"proxy_tags"`
	KeepProxyTags        bool                    `json:"keep_proxy"`
	TextToSpeech         bool                    `json:"text_to_speech"`
	AutoproxyEnabled     *bool                   `json:"autoproxy_enabled"`
	MessageCount         *uint32                 `json:"message_count"`
	LastMessageTimestamp *time.Time              `json:"last_message_timestamp"`
	Privacy              *MemberPrivacy          `json:"privacy"`
}

// MemberPrivacy is the per-field visibility of a member.
type MemberPrivacy struct {
	Visibility  Privacy `json:"visibility"`
	Name        Privacy `json:"name"`
	Description Privacy `json:"description"`
	Birthday    Privacy `json:"birthday"`
	Pronouns    Privacy `json:"pronouns"`
	Avatar      Privacy `json:"avatar"`
	Metadata    Privacy `json:"metadata"`
}

// MemberPatch is a partial update to a member. Unmodified fields stay
// off the wire entirely; a field patched with a nil pointer serializes
// as null, clearing it on the server. ProxyTags is the complete
// replacement list, not a delta, and is always sent.
type MemberPatch struct {
	Name             Patchable[BoundedString[Max100]]   `json:"name,omitzero"`
	DisplayName      Patchable[*BoundedString[Max100]]  `json:"display_name,omitzero"`
	Color            Patchable[*Color]                  `json:"color,omitzero"`
	Birthday         Patchable[*time.Time]              `json:"birthday,omitzero"`
	Pronouns         Patchable[*BoundedString[Max100]]  `json:"pronouns,omitzero"`
	Avatar           Patchable[*BoundedURL[Max256]]     `json:"avatar_url,omitzero"`
	WebhookAvatar    Patchable[*BoundedURL[Max256]]     `json:"webhook_avatar_url,omitzero"`
	Banner           Patchable[*BoundedURL[Max256]]     `json:"banner,omitzero"`
	Description      Patchable[*BoundedString[Max1000]] `json:"description,omitzero"`
	ProxyTags        []ProxyTag                         `json:"proxy_tags"`
	KeepProxyTags    Patchable[bool]                    `json:"keep_proxy,omitzero"`
	TextToSpeech     Patchable[bool]                    `json:"text_to_speech,omitzero"`
	AutoproxyEnabled Patchable[*bool]                   `json:"autoproxy_enabled,omitzero"`
	Privacy          Patchable[MemberPrivacyPatch]      `json:"privacy,omitzero"`
}

// MemberPrivacyPatch is a partial update to a member's privacy settings.
type MemberPrivacyPatch struct {
	Visibility  Patchable[Privacy] `json:"visibility,omitzero"`
	Name        Patchable[Privacy] `json:"name,omitzero"`
	Description Patchable[Privacy] `json:"description,omitzero"`
	Birthday    Patchable[Privacy] `json:"birthday,omitzero"`
	Pronouns    Patchable[Privacy] `json:"pronouns,omitzero"`
	Avatar      Patchable[Privacy] `json:"avatar,omitzero"`
	Metadata    Patchable[Privacy] `json:"metadata,omitzero"`
}

// MemberPrivacyAllPublic patches every privacy field to public, for the
// common bulk visibility change.
func MemberPrivacyAllPublic() MemberPrivacyPatch {
	return memberPrivacyAll(PrivacyPublic)
}

// MemberPrivacyAllPrivate patches every privacy field to private.
func MemberPrivacyAllPrivate() MemberPrivacyPatch {
	return memberPrivacyAll(PrivacyPrivate)
}

func memberPrivacyAll(p Privacy) MemberPrivacyPatch {
	return MemberPrivacyPatch{
		Visibility:  Patch(p),
		Name:        Patch(p),
		Description: Patch(p),
		Birthday:    Patch(p),
		Pronouns:    Patch(p),
		Avatar:      Patch(p),
		Metadata:    Patch(p),
	}
}
