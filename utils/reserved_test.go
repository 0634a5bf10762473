package utils

import "testing"

func TestIsReservedSlug(t *testing.T) {
	for _, s := range []string{"auth", "files", "invitation", "invitations", "static", "themes", "upload"} {
		if !IsReservedSlug(s) {
			t.Errorf("%q should be reserved", s)
		}
	}
	for _, s := range []string{"themes-1", "ann-and-tom", "invitation-2", ""} {
		if IsReservedSlug(s) {
			t.Errorf("%q should not be reserved", s)
		}
	}
}
