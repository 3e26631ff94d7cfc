package user

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is an account. The plaintext password is never a field: it is
// hashed on the way in through SetPassword and cannot be read back.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	RoleID       *uint     `json:"roleId"`
	Role         *Role     `json:"-"`
	Confirmed    bool      `gorm:"default:false" json:"confirmed"`
	Name         string    `gorm:"size:64" json:"name"`
	Location     string    `gorm:"size:64" json:"location"`
	AboutMe      string    `gorm:"type:text" json:"aboutMe"`
	MemberSince  time.Time `json:"memberSince"`
	LastSeen     time.Time `json:"lastSeen"`
}

// Create inserts a new account, assigning a role the way signup does: an
// email matching the configured administrator email gets the role carrying
// the full permission mask, everyone else gets the default role. A user
// that already carries a role is left alone. When neither lookup matches,
// the account simply has no role and Can denies everything.
func Create(db *gorm.DB, adminEmail string, u *User) error {
	now := time.Now().UTC()
	if u.MemberSince.IsZero() {
		u.MemberSince = now
	}
	if u.LastSeen.IsZero() {
		u.LastSeen = u.MemberSince
	}
	if u.RoleID == nil && u.Role == nil {
		var role Role
		var err error
		if adminEmail != "" && u.Email == adminEmail {
			err = db.Where("permissions = ?", Administrator).First(&role).Error
		} else {
			err = db.Where("is_default = ?", true).First(&role).Error
		}
		switch {
		case err == nil:
			u.Role = &role
			u.RoleID = &role.ID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}
	return db.Create(u).Error
}

// ByID loads an account with its role preloaded.
func ByID(db *gorm.DB, id uint) (*User, error) {
	var u User
	if err := db.Preload("Role").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ByEmail loads an account by its unique email, role preloaded.
func ByEmail(db *gorm.DB, email string) (*User, error) {
	var u User
	if err := db.Preload("Role").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Can reports whether the account's role contains every requested bit.
func (u *User) Can(p Permission) bool {
	return u.Role != nil && u.Role.Permissions&p == p
}

func (u *User) IsAdministrator() bool {
	return u.Can(Administrator)
}

// Ping refreshes the last-seen timestamp and persists it immediately.
func (u *User) Ping(db *gorm.DB) error {
	u.LastSeen = time.Now().UTC()
	return db.Model(u).Update("last_seen", u.LastSeen).Error
}

const (
	gravatarSecureBase   = "https://secure.gravatar.com/avatar"
	gravatarInsecureBase = "http://www.gravatar.com/avatar"
)

// Gravatar derives the avatar URL for the account email from the MD5 hex
// digest of its lowercase form. The secure flag reflects the transport of
// the inbound request and selects the matching gravatar host. Only a URL
// is built; no request is made here.
func (u *User) Gravatar(secure bool, size int, defaultStyle, rating string) string {
	base := gravatarInsecureBase
	if secure {
		base = gravatarSecureBase
	}
	sum := md5.Sum([]byte(strings.ToLower(u.Email)))
	return fmt.Sprintf("%s/%s?s=%d&r=%s&d=%s",
		base, hex.EncodeToString(sum[:]), size, rating, defaultStyle)
}
