package users

import "time"

const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
	RoleClient = "CLIENT"
)

type Role struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_roles_name" json:"name"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (Role) TableName() string { return "roles" }

// User doubles as a shop: orders reference the seller's user id as shopId.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email" json:"email"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Avatar    *string   `gorm:"type:varchar(1000)" json:"avatar"`
	RoleID    int64     `gorm:"not null;index:ix_users_role" json:"roleId"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
