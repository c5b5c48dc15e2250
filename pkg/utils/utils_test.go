package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name  string `validate:"required,min=3"`
		Score int    `validate:"min=1,max=10"`
	}

	if errs := ValidateStruct(&payload{Name: "alice", Score: 5}); errs != nil {
		t.Errorf("valid payload produced errors: %v", errs)
	}

	errs := ValidateStruct(&payload{Name: "", Score: 11})
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want 2 entries", errs)
	}
	if _, ok := errs["Name"]; !ok {
		t.Error("missing Name error")
	}
	if _, ok := errs["Score"]; !ok {
		t.Error("missing Score error")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash should not equal the plaintext")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"", 10, 10},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-5", 10, 10},
		{"3", 10, 3},
	}

	for _, tc := range cases {
		if got := ParseInt(tc.in, tc.def); got != tc.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestUserContextRoundTrip(t *testing.T) {
	userID := uuid.New()
	ctx := SetUserContext(context.Background(), userID, "customer")

	gotID, ok := GetUserIDFromContext(ctx)
	if !ok || gotID != userID {
		t.Errorf("user id = %v ok=%v", gotID, ok)
	}

	role, ok := GetRoleFromContext(ctx)
	if !ok || role != "customer" {
		t.Errorf("role = %q ok=%v", role, ok)
	}

	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("empty context should not yield a user id")
	}
}
