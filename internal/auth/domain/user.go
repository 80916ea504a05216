package domain

// User represents a registered account. Password holds the hex-encoded
// one-way digest of the plaintext password; the plaintext is never stored.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // Never return password in JSON
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}
