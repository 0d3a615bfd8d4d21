package users

import (
	"context"
	"testing"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/store/storetest"
)

func TestCreateUser(t *testing.T) {
	svc := NewService(storetest.NewSQLite(t))
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateUserRequest{Email: " HR@Acme.io ", Name: "Hana", Role: "HR"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Acknowledged || res.InsertedID == "" {
		t.Fatalf("unexpected result %+v", res)
	}

	_, err = svc.Create(ctx, CreateUserRequest{Email: "hr@acme.io"})
	if !apierr.Is(err, apierr.CodeConflict) {
		t.Fatalf("err = %v, want CONFLICT", err)
	}

	_, err = svc.Create(ctx, CreateUserRequest{Email: "x@acme.io", Role: "admin"})
	if !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Fatalf("err = %v, want INVALID_ARGUMENT", err)
	}

	u, err := svc.Get(ctx, "hr@acme.io")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != "hr" || u.Email != "hr@acme.io" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := NewService(storetest.NewSQLite(t))
	ctx := context.Background()
	if _, err := svc.Create(ctx, CreateUserRequest{Email: "emp@acme.io"}); err != nil {
		t.Fatal(err)
	}

	name := "Emma"
	res, err := svc.UpdateProfile(ctx, "emp@acme.io", UpdateProfileRequest{Name: &name})
	if err != nil || res.MatchedCount != 1 {
		t.Fatalf("UpdateProfile = %+v, %v", res, err)
	}
	if _, err := svc.UpdateProfileImage(ctx, "emp@acme.io", "https://img/emma.png"); err != nil {
		t.Fatal(err)
	}
	u, _ := svc.Get(ctx, "emp@acme.io")
	if u.Name != "Emma" || u.ProfileImage != "https://img/emma.png" {
		t.Fatalf("unexpected user %+v", u)
	}

	// empty patch on an existing user is a no-op, not a 404
	res, err = svc.UpdateProfile(ctx, "emp@acme.io", UpdateProfileRequest{})
	if err != nil || res.MatchedCount != 0 {
		t.Fatalf("empty patch = %+v, %v", res, err)
	}

	_, err = svc.UpdateProfileImage(ctx, "ghost@acme.io", "x")
	if !apierr.Is(err, apierr.CodeNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}
