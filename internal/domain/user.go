package domain

// User is an account allowed into the admin API. Password holds a bcrypt
// hash and never leaves the process.
type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string { return "users" }
