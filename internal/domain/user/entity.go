package user

// Recipient is the minimal projection of a user needed to address notifications.
type Recipient struct {
	ID    string
	OrgID string
	Role  Role
}
