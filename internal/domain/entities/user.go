package entities

// UserProfile is a read-only projection of the user_data collection, shown
// in the "submitted by" panel of the review dialog. Older documents key the
// profile by an internal document id while newer ones carry a userId field;
// the lookup tries both.
type UserProfile struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}
