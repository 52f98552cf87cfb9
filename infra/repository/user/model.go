package user

// User represents an account record in the database. Passwords are stored
// exactly as submitted; uniqueness of username and email is enforced at the
// schema level as well as by the pre-insert existence check.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null;size:50"`
	Email    string `gorm:"uniqueIndex;not null;size:255"`
	Password string `gorm:"not null"`
	FullName string `gorm:"size:255"`
	Phone    string `gorm:"size:50"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
