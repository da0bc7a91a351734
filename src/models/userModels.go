package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleManager  Role = "manager"
	RoleAgent    Role = "agent"
)

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);unique;not null"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
	Name     string `json:"name" gorm:"type:varchar(255)"`
	Role     Role   `json:"role" gorm:"type:varchar(20);default:'agent';not null"`
}

// HasRole reports whether the user holds the given role. Admins satisfy every
// role check.
func (u *UserModel) HasRole(role Role) bool {
	if u == nil {
		return false
	}
	return u.Role == role || u.Role == RoleAdmin
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
