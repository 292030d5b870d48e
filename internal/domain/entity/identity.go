package entity

// ExternalIdentity is the profile a provider asserted for the signed-in account.
// It carries identity facts only; binding it to a User is the reconciler's job.
type ExternalIdentity struct {
	Provider   ProviderType
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	Picture    string
}

// HasEmail reports whether the provider disclosed an email address.
func (i *ExternalIdentity) HasEmail() bool {
	return i != nil && i.Email != ""
}
