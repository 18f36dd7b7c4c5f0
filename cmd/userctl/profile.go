package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herbiel/QuantDinger/client"
)

func newRolesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List assignable roles and their permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			roles, err := c.GetRoles(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), roles)
		},
	}
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	profileCmd := &cobra.Command{Use: "profile", Short: "Self-service operations on the token's own account"}
	profileCmd.AddCommand(
		newGetProfileCmd(opts),
		newUpdateProfileCmd(opts),
		newChangePasswordCmd(opts),
	)
	return profileCmd
}

func newGetProfileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			p, err := c.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newUpdateProfileCmd(opts *rootOptions) *cobra.Command {
	var nickname, email, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update nickname, email or avatar; only flags given are sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.UpdateProfileRequest
			flags := cmd.Flags()
			if flags.Changed("nickname") {
				req.Nickname = client.String(nickname)
			}
			if flags.Changed("email") {
				req.Email = client.String(email)
			}
			if flags.Changed("avatar") {
				req.Avatar = client.String(avatar)
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.UpdateProfile(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL or path")
	return cmd
}

func newChangePasswordCmd(opts *rootOptions) *cobra.Command {
	var req client.ChangePasswordRequest

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the current user's password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.ChangePassword(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.OldPassword, "old-password", "", "Current password (required)")
	cmd.Flags().StringVar(&req.NewPassword, "new-password", "", "New password (required)")
	_ = cmd.MarkFlagRequired("old-password")
	_ = cmd.MarkFlagRequired("new-password")
	return cmd
}
