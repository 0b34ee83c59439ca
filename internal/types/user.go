//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Subscription is the plan tier of the local user profile.
type Subscription string

// Subscription tiers
const (
	SubscriptionFree       Subscription = "Free"
	SubscriptionPremium    Subscription = "Premium"
	SubscriptionEnterprise Subscription = "Enterprise"
)

// NotificationPreferences holds opt-ins for reminders.
type NotificationPreferences struct {
	Email            bool `json:"email"`
	JobAlerts        bool `json:"jobAlerts"`
	ApplicationAlert bool `json:"applicationUpdates"`
}

// Preferences are the user's defaults for new documents.
type Preferences struct {
	DefaultResumeID   string                  `json:"defaultResumeId,omitempty"`
	DefaultTemplateID string                  `json:"defaultTemplateId,omitempty"`
	DefaultColor      string                  `json:"defaultColor,omitempty"`
	DefaultFont       string                  `json:"defaultFont,omitempty"`
	Language          string                  `json:"language,omitempty"`
	Notifications     NotificationPreferences `json:"notifications"`
}

// User is the single local user profile.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email" validate:"required,email"`
	Name         string       `json:"name" validate:"required"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Subscription Subscription `json:"subscription" validate:"oneof=Free Premium Enterprise"`
	Preferences  Preferences  `json:"preferences"`
}
