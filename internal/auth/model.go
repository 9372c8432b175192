package auth

import "github.com/open-sedori/sedori/internal/models"

// Role represents the authorization role of a user account.
type Role string

const (
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// UserAccount represents a platform user in the database.
type UserAccount struct {
	models.BaseModel
	Email        string `gorm:"type:varchar(255);column:email;not null;unique" json:"email"`
	DisplayName  string `gorm:"type:varchar(255);column:display_name;not null" json:"displayName"`
	PasswordHash string `gorm:"type:varchar(255);column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);column:role;not null;default:'SELLER'" json:"role"`
}

func (u *UserAccount) TableName() string {
	return "user_accounts"
}
