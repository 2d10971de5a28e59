package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/system/htmlsanitize"
)

func TestSanitize(t *testing.T) {
	got := htmlsanitize.Sanitize(`<p>Hello <b>chapter</b></p><script>alert(1)</script><a href="javascript:x()">link</a>`)

	if strings.Contains(got, "script") {
		t.Errorf("expected script removed, got %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript URL removed, got %q", got)
	}
	if !strings.Contains(got, "<b>chapter</b>") {
		t.Errorf("expected formatting preserved, got %q", got)
	}
}
