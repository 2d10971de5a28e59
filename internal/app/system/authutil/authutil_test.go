package authutil_test

import (
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/system/authutil"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := authutil.HashPassword("correct horse 1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse 1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !authutil.CheckPassword("correct horse 1", hash) {
		t.Error("expected matching password to verify")
	}
	if authutil.CheckPassword("wrong password 2", hash) {
		t.Error("expected non-matching password to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		pw string
		ok bool
	}{
		{"abc12345", true},
		{"short1", false},
		{"allletters", false},
		{"12345678", false},
		{"", false},
	}
	for _, c := range cases {
		err := authutil.ValidatePassword(c.pw)
		if c.ok && err != nil {
			t.Errorf("ValidatePassword(%q) = %v, want nil", c.pw, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want error", c.pw)
		}
	}
}
