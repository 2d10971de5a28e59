package normalize_test

import (
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	if got := normalize.Email("  Maya.Chen@Example.COM "); got != "maya.chen@example.com" {
		t.Errorf("Email() = %q", got)
	}
}

func TestName(t *testing.T) {
	if got := normalize.Name("  Maya Chen "); got != "Maya Chen" {
		t.Errorf("Name() = %q", got)
	}
}

func TestChapter_PreservesCase(t *testing.T) {
	if got := normalize.Chapter(" Washington FBLA "); got != "Washington FBLA" {
		t.Errorf("Chapter() = %q", got)
	}
}

func TestRole(t *testing.T) {
	if got := normalize.Role(" Officer "); got != "officer" {
		t.Errorf("Role() = %q", got)
	}
}
