//go:build integration
// +build integration

package client_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	client "github.com/herbiel/QuantDinger/client"
)

// TestUserLifecycle creates, reads, updates, resets and deletes a user with an
// admin token taken from TEST_ADMIN_TOKEN.
func TestUserLifecycle(t *testing.T) {
	token := os.Getenv("TEST_ADMIN_TOKEN")
	if token == "" {
		t.Skip("TEST_ADMIN_TOKEN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := client.New(backendURL(), token)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	roles, err := c.GetRoles(ctx)
	if err != nil || len(roles) == 0 {
		t.Fatalf("GetRoles: roles=%v err=%v", roles, err)
	}

	username := fmt.Sprintf("it_%d", time.Now().UnixNano())
	created, err := c.CreateUser(ctx, client.CreateUserRequest{Username: username, Password: "integration-pw", Role: client.RoleViewer})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := c.GetUserDetail(ctx, created.ID)
	if err != nil || got.Username != username {
		t.Fatalf("GetUserDetail: user=%+v err=%v", got, err)
	}

	if err := c.UpdateUser(ctx, created.ID, client.UpdateUserRequest{Nickname: client.String("Integration")}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if err := c.ResetUserPassword(ctx, client.ResetPasswordRequest{UserID: created.ID, NewPassword: "integration-pw2"}); err != nil {
		t.Fatalf("ResetUserPassword: %v", err)
	}

	list, err := c.GetUserList(ctx, client.ListUsersParams{Page: 1, PageSize: 100})
	if err != nil || list.Total == 0 {
		t.Fatalf("GetUserList: list=%+v err=%v", list, err)
	}

	if err := c.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := c.GetUserDetail(ctx, created.ID); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

// TestProfile reads the caller's own profile.
func TestProfile(t *testing.T) {
	token := os.Getenv("TEST_ADMIN_TOKEN")
	if token == "" {
		t.Skip("TEST_ADMIN_TOKEN not set")
	}
	c, err := client.New(backendURL(), token)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	p, err := c.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Username == "" || len(p.Permissions) == 0 {
		t.Fatalf("unexpected profile: %+v", p)
	}
}
