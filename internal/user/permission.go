package user

// Permission is a single capability flag. Flags combine by bitwise union;
// a role grants a set of permissions iff its mask contains every requested
// bit.
type Permission uint8

const (
	Follow           Permission = 0x01
	Comment          Permission = 0x02
	WriteArticles    Permission = 0x04
	ModerateComments Permission = 0x08
	// Administrator is a superset mask: it contains every other bit, so an
	// administrator role passes every permission check.
	Administrator Permission = 0xFF
)

// Identity is the permission-checking surface shared by authenticated
// users and the anonymous stand-in.
type Identity interface {
	Can(p Permission) bool
	IsAdministrator() bool
}
