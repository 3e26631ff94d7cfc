package user

import (
	"strings"
	"testing"
	"time"
)

func TestCan_BitmaskContainment(t *testing.T) {
	u := &User{Role: &Role{Permissions: Follow | Comment}}

	if !u.Can(Follow) {
		t.Errorf("expected Can(Follow) to be true")
	}
	if !u.Can(Follow | Comment) {
		t.Errorf("expected Can(Follow|Comment) to be true")
	}
	if u.Can(WriteArticles) {
		t.Errorf("expected Can(WriteArticles) to be false")
	}
	if u.Can(Follow | WriteArticles) {
		t.Errorf("partial match must not satisfy a combined mask")
	}
	if u.IsAdministrator() {
		t.Errorf("non-admin role must not be administrator")
	}
}

func TestCan_AdministratorMaskCoversEverything(t *testing.T) {
	u := &User{Role: &Role{Permissions: Administrator}}
	for _, p := range []Permission{Follow, Comment, WriteArticles, ModerateComments, Administrator} {
		if !u.Can(p) {
			t.Errorf("administrator should satisfy permission %#x", p)
		}
	}
	if !u.IsAdministrator() {
		t.Errorf("expected IsAdministrator to be true")
	}
}

func TestCan_NilRoleDeniesEverything(t *testing.T) {
	u := &User{}
	if u.Can(Follow) || u.IsAdministrator() {
		t.Errorf("user without a role must have no permissions")
	}
}

func TestCreate_AssignsAdministratorByEmail(t *testing.T) {
	db := setupDB(t)
	if err := InsertRoles(db); err != nil {
		t.Fatalf("InsertRoles failed: %v", err)
	}

	u := User{Email: "boss@example.com", Username: "boss"}
	if err := Create(db, "boss@example.com", &u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	loaded, err := ByID(db, u.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if !loaded.IsAdministrator() {
		t.Errorf("admin email account should carry the administrator role")
	}
}

func TestCreate_AssignsDefaultRole(t *testing.T) {
	db := setupDB(t)
	if err := InsertRoles(db); err != nil {
		t.Fatalf("InsertRoles failed: %v", err)
	}

	u := User{Email: "jane@example.com", Username: "jane"}
	if err := Create(db, "boss@example.com", &u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	loaded, err := ByID(db, u.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if !loaded.Can(WriteArticles) {
		t.Errorf("default role should grant WriteArticles")
	}
	if loaded.Can(ModerateComments) {
		t.Errorf("default role must not grant ModerateComments")
	}
	if loaded.MemberSince.IsZero() || loaded.LastSeen.IsZero() {
		t.Errorf("timestamps should be filled at creation")
	}
}

func TestCreate_NoRolesSeeded(t *testing.T) {
	db := setupDB(t)

	u := User{Email: "orphan@example.com", Username: "orphan"}
	if err := Create(db, "boss@example.com", &u); err != nil {
		t.Fatalf("Create should not fail when no roles exist: %v", err)
	}
	if u.RoleID != nil {
		t.Errorf("expected nil role when neither lookup matches")
	}
	if u.Can(Follow) {
		t.Errorf("roleless user must have no permissions")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)

	a := User{Email: "dup@example.com", Username: "a"}
	if err := Create(db, "", &a); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	b := User{Email: "dup@example.com", Username: "b"}
	err := Create(db, "", &b)
	if err == nil {
		t.Fatalf("expected uniqueness violation for duplicate email")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Errorf("expected unique constraint error, got: %v", err)
	}
}

func TestPing_RefreshesLastSeen(t *testing.T) {
	db := setupDB(t)

	u := User{Email: "ping@example.com", Username: "ping", LastSeen: time.Now().UTC().Add(-24 * time.Hour)}
	if err := Create(db, "", &u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	before := u.LastSeen

	if err := u.Ping(db); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	var reloaded User
	if err := db.First(&reloaded, u.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.LastSeen.After(before) {
		t.Errorf("LastSeen not refreshed: before=%v after=%v", before, reloaded.LastSeen)
	}
}

func TestGravatar(t *testing.T) {
	u := &User{Email: "John@Example.COM"}

	url := u.Gravatar(false, 100, "identicon", "g")
	// md5("john@example.com") — the email is lowercased first.
	if !strings.Contains(url, "d4c74594d841139328695756648b6bd6") {
		t.Errorf("gravatar hash should come from the lowercase email, got %s", url)
	}
	if !strings.HasPrefix(url, "http://www.gravatar.com/avatar/") {
		t.Errorf("insecure request should use the plain host, got %s", url)
	}
	if !strings.Contains(url, "s=100") || !strings.Contains(url, "r=g") || !strings.Contains(url, "d=identicon") {
		t.Errorf("missing query parameters in %s", url)
	}

	secureURL := u.Gravatar(true, 256, "retro", "pg")
	if !strings.HasPrefix(secureURL, "https://secure.gravatar.com/avatar/") {
		t.Errorf("secure request should use the secure host, got %s", secureURL)
	}
	if !strings.Contains(secureURL, "s=256") {
		t.Errorf("size parameter not honored in %s", secureURL)
	}
}

func TestAnonymousUser_DeniesEverything(t *testing.T) {
	var anon Identity = AnonymousUser{}
	for _, p := range []Permission{Follow, Comment, WriteArticles, ModerateComments, Administrator} {
		if anon.Can(p) {
			t.Errorf("anonymous user must not hold permission %#x", p)
		}
	}
	if anon.IsAdministrator() {
		t.Errorf("anonymous user must not be administrator")
	}
}
