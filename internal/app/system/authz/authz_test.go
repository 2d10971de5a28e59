package authz_test

import (
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/system/authz"
	"github.com/chapterhub/chapterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	r := testutil.NewRequest("GET", "/")

	role, name, id, ok := authz.UserCtx(r)
	if ok {
		t.Fatal("expected ok=false with no user in context")
	}
	if role != "visitor" || name != "" || id != primitive.NilObjectID {
		t.Errorf("expected visitor zero values, got %q %q %v", role, name, id)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	u := testutil.AdviserUser()
	u.ID = "not-a-hex-objectid"
	r := testutil.WithUser(testutil.NewRequest("GET", "/"), u)

	if _, _, _, ok := authz.UserCtx(r); ok {
		t.Fatal("expected fail-closed on malformed user ID")
	}
}

func TestRoleChecks(t *testing.T) {
	adviser := testutil.WithUser(testutil.NewRequest("GET", "/"), testutil.AdviserUser())
	officer := testutil.WithUser(testutil.NewRequest("GET", "/"), testutil.OfficerUser())
	member := testutil.WithUser(testutil.NewRequest("GET", "/"), testutil.MemberUser())
	visitor := testutil.NewRequest("GET", "/")

	if !authz.IsAdviser(adviser) || authz.IsAdviser(member) {
		t.Error("IsAdviser misclassified")
	}
	if !authz.IsOfficer(officer) || authz.IsOfficer(adviser) {
		t.Error("IsOfficer misclassified")
	}
	if !authz.IsMember(member) || authz.IsMember(officer) || authz.IsMember(visitor) {
		t.Error("IsMember misclassified")
	}
	if !authz.CanManageRoster(adviser) || !authz.CanManageRoster(officer) {
		t.Error("advisers and officers manage rosters")
	}
	if authz.CanManageRoster(member) || authz.CanManageRoster(visitor) {
		t.Error("members and visitors must not manage rosters")
	}
	if !authz.HasAnyRole(member, "Member", "officer") {
		t.Error("HasAnyRole should match case-insensitively")
	}
	if authz.HasAnyRole(visitor, "member") {
		t.Error("HasAnyRole must be false for visitors")
	}
}

func TestValidRoles(t *testing.T) {
	// Account and roster enums use different spellings of the advisory role.
	if !authz.ValidUserRole("adviser") || authz.ValidUserRole("advisor") {
		t.Error("account roles accept adviser, not advisor")
	}
	if !authz.ValidRosterRole("advisor") || authz.ValidRosterRole("adviser") {
		t.Error("roster roles accept advisor, not adviser")
	}
	if authz.ValidUserRole("president") || authz.ValidRosterRole("") {
		t.Error("unknown roles must be rejected")
	}
}
