package models

// Role group names. A user with neither group is a plain customer.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
)

// User is an account that can hold zero or more role groups plus a
// separate superuser flag.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"type:varchar(150)" json:"email"`
	PasswordHash string  `gorm:"type:varchar(100);not null" json:"-"`
	Superuser    bool    `gorm:"not null;default:false" json:"-"`
	Groups       []Group `gorm:"many2many:user_groups;" json:"groups"`
}

func (User) TableName() string {
	return "users"
}

// HasGroup reports whether the user belongs to the named role group.
func (u *User) HasGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

func (u *User) IsManager() bool {
	return u.HasGroup(GroupManager)
}

func (u *User) IsDeliveryCrew() bool {
	return u.HasGroup(GroupDeliveryCrew)
}

// Group is a named role.
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Group) TableName() string {
	return "groups"
}

// Principal is the actor behind a request: either an authenticated user
// (with groups preloaded) or anonymous when User is nil.
type Principal struct {
	User *User
}

// Anonymous reports whether no authenticated user backs the request.
func (p *Principal) Anonymous() bool {
	return p == nil || p.User == nil
}
