package user

import (
	"errors"

	"gorm.io/gorm"
)

type Role struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"uniqueIndex;size:64;not null" json:"name"`
	IsDefault   bool       `gorm:"column:is_default;default:false" json:"isDefault"`
	Permissions Permission `gorm:"not null" json:"permissions"`
	Users       []User     `gorm:"foreignKey:RoleID" json:"-"`
}

// InsertRoles upserts the canonical role catalog by name. Safe to run
// repeatedly: bitmasks and default flags converge to the values below, and
// only the "User" role keeps is_default set. New accounts without an
// explicit role pick up the default role at creation time.
func InsertRoles(db *gorm.DB) error {
	catalog := []struct {
		name        string
		permissions Permission
		isDefault   bool
	}{
		{"User", Follow | Comment | WriteArticles, true},
		{"Moderare", Follow | Comment | WriteArticles | ModerateComments, false},
		{"Administrator", Administrator, false},
	}
	for _, entry := range catalog {
		var role Role
		err := db.Where("name = ?", entry.name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = Role{Name: entry.name}
		} else if err != nil {
			return err
		}
		role.Permissions = entry.permissions
		role.IsDefault = entry.isDefault
		if err := db.Save(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
