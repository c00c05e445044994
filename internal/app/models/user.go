package models

// DefaultAvatarURL is assigned to users registering without an avatar.
const DefaultAvatarURL = "/assets/avatars/avatar_1.png"

// User defines the user model based on the 'users' table
type User struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	Email              string  `json:"email" db:"email"`
	Telephone          string  `json:"telephone" db:"telephone"`
	IsPrivateEmail     bool    `json:"is_private_email" db:"is_private_email"`
	IsPrivateTelephone bool    `json:"is_private_telephone" db:"is_private_telephone"`
	PasswordHash       string  `json:"-" db:"password_hash"`
	RoleID             Role    `json:"role_id" db:"role_id"`
	AvatarURL          string  `json:"avatar_url" db:"avatar_url"`
	ActivationCode     *string `json:"-" db:"activation_code"`
	CreatedAt          int64   `json:"created_at" db:"created_at"`
}

// IsActivated reports whether the emailed activation code has been redeemed.
func (u *User) IsActivated() bool {
	return u.ActivationCode == nil
}

// UserSummary is the compact user shape embedded in project and booking responses.
type UserSummary struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}

// Summary converts a user into its compact form.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}
