package models

// Capability is a typed qualification tag. Positions declare the capabilities
// they require and serving profiles declare the positions a volunteer is
// qualified for, so matching never happens on free-form strings.
type Capability string

// CapabilityList is persisted as a jsonb column via the gorm json serializer
type CapabilityList []Capability

// Contains reports whether the list holds the given capability
func (l CapabilityList) Contains(c Capability) bool {
	for _, item := range l {
		if item == c {
			return true
		}
	}
	return false
}

// ProfileStatus defines the lifecycle status of a serving profile
type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusInactive ProfileStatus = "inactive"
)

// IsValid checks if the ProfileStatus is valid
func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusInactive:
		return true
	}
	return false
}

// RequestStatus defines the states of a serving request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
	RequestStatusExpired  RequestStatus = "expired"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined, RequestStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave this state
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusAccepted, RequestStatusDeclined, RequestStatusExpired:
		return true
	}
	return false
}

// IsResponse reports whether the status is a volunteer response
func (s RequestStatus) IsResponse() bool {
	return s == RequestStatusAccepted || s == RequestStatusDeclined
}
