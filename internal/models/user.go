package models

// User represents a storefront account, keyed by email.
type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex" json:"email"`
	Name  string `json:"name"`
	// Password holds the hex-encoded sha256 digest of the raw password.
	Password string `json:"-"`
	Status   string `json:"status"`
}

// UserStatusActive is the status assigned to every account at signup.
const UserStatusActive = "active"
