package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/herbiel/QuantDinger/client"
)

func newUsersCmd(opts *rootOptions) *cobra.Command {
	usersCmd := &cobra.Command{Use: "users", Short: "User administration (admin token required)"}
	usersCmd.AddCommand(
		newListUsersCmd(opts),
		newGetUserCmd(opts),
		newCreateUserCmd(opts),
		newUpdateUserCmd(opts),
		newDeleteUsersCmd(opts),
		newResetPasswordCmd(opts),
		newImportUsersCmd(opts),
	)
	return usersCmd
}

func newListUsersCmd(opts *rootOptions) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			start := time.Now()
			list, err := c.GetUserList(cmd.Context(), client.ListUsersParams{Page: page, PageSize: pageSize})
			if err != nil {
				return err
			}
			log.Debug().
				Int("page", list.Page).
				Int("total", list.Total).
				Dur("elapsed", time.Since(start)).
				Msg("list users completed")
			return printJSON(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number (server default 1)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Users per page (server default 20, max 100)")
	return cmd
}

func newGetUserCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			u, err := c.GetUserDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
}

func newCreateUserCmd(opts *rootOptions) *cobra.Command {
	var req client.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().
				Str("username", req.Username).
				Str("role", req.Role).
				Str("base_url", opts.baseURL).
				Msg("creating user")

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			created, err := c.CreateUser(cmd.Context(), req)
			if err != nil {
				log.Error().Err(err).Str("username", req.Username).Msg("create user failed")
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Login name (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Initial password (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Nickname, "nickname", "", "Display name")
	cmd.Flags().StringVar(&req.Role, "role", "", "Role: viewer, user, manager or admin (server default user)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUpdateUserCmd(opts *rootOptions) *cobra.Command {
	var email, nickname, avatar, role, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of a user; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var req client.UpdateUserRequest
			flags := cmd.Flags()
			if flags.Changed("email") {
				req.Email = client.String(email)
			}
			if flags.Changed("nickname") {
				req.Nickname = client.String(nickname)
			}
			if flags.Changed("avatar") {
				req.Avatar = client.String(avatar)
			}
			if flags.Changed("role") {
				req.Role = client.String(role)
			}
			if flags.Changed("status") {
				req.Status = client.String(status)
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.UpdateUser(cmd.Context(), id, req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Display name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL or path")
	cmd.Flags().StringVar(&role, "role", "", "Role: viewer, user, manager or admin")
	cmd.Flags().StringVar(&status, "status", "", "Status: active or disabled")
	return cmd
}

func newResetPasswordCmd(opts *rootOptions) *cobra.Command {
	var req client.ResetPasswordRequest

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.ResetUserPassword(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password reset for user %d\n", req.UserID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.UserID, "user-id", 0, "User ID (required)")
	cmd.Flags().StringVar(&req.NewPassword, "new-password", "", "New password (required)")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("new-password")
	return cmd
}
