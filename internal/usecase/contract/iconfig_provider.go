package usecasecontract

import "time"

type IConfigProvider interface {
	GetAppBaseURL() string
	GetSessionTokenTTL() time.Duration
	GetReviewTokenTTL() time.Duration
	GetBookingSurchargeFactor() float64
	GetEnforceGuestCapacity() bool
	GetIssueReviewLinkOnBooking() bool
	GetNotificationTimeout() time.Duration
	GetInitialAdmin() (username, email, password string)
	GetGoogleClientID() string
	GetGoogleClientSecret() string
}
