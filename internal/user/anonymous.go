package user

// AnonymousUser stands in for the current user when nobody is logged in.
// Every permission check is denied.
type AnonymousUser struct{}

func (AnonymousUser) Can(Permission) bool   { return false }
func (AnonymousUser) IsAdministrator() bool { return false }
