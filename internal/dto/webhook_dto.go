package dto

// IdentityEvent is the verified webhook envelope from the identity provider.
// Only user lifecycle events are handled; everything else is acknowledged and
// ignored.
type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventData `json:"data"`
}

type IdentityEventData struct {
	Id             string                 `json:"id"`
	FirstName      string                 `json:"first_name"`
	ImageUrl       string                 `json:"image_url"`
	EmailAddresses []IdentityEmailAddress `json:"email_addresses"`
}

type IdentityEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first email address or "".
func (d IdentityEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
