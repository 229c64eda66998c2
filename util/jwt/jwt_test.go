package jwt_test

import (
	"testing"

	"github.com/guburchardt/kingsystem-backoffice/util/jwt"
)

func TestIssueParseRoundTrip(t *testing.T) {
	tok, err := jwt.Issue("secret", 7, "admin", 1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := jwt.ParseAuth("Bearer "+tok, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub, _ := claims["sub"].(float64); int64(sub) != 7 {
		t.Errorf("sub = %v; want 7", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v; want admin", claims["role"])
	}
}

func TestParseAuth_BadSecret(t *testing.T) {
	tok, _ := jwt.Issue("secret", 7, "admin", 1)
	if _, err := jwt.ParseAuth("Bearer "+tok, "other"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseAuth_MissingHeader(t *testing.T) {
	for _, h := range []string{"", "Bearer ", "Bearer"} {
		if _, err := jwt.ParseAuth(h, "secret"); err == nil {
			t.Fatalf("expected error for header %q", h)
		}
	}
}
