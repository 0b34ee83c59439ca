package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show or update the local user profile",
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the local user profile",
	Args:  cobra.NoArgs,
	RunE:  runUserShow,
}

var userSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the local user profile",
	Args:  cobra.NoArgs,
	RunE:  runUserSet,
}

var (
	userEmail        string
	userName         string
	userSubscription string
)

var subscriptions = []types.Subscription{types.SubscriptionFree, types.SubscriptionPremium, types.SubscriptionEnterprise}

func init() {
	userSetCmd.Flags().StringVar(&userEmail, "email", "", "Email address")
	userSetCmd.Flags().StringVar(&userName, "name", "", "Display name")
	userSetCmd.Flags().StringVar(&userSubscription, "plan", "", "Subscription: Free, Premium, or Enterprise")

	userCmd.AddCommand(userShowCmd, userSetCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		u, ok := a.Store.User()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No user profile. Create one with 'user set --email <email> --name <name>'.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nPlan: %s\nSince: %s\n", u.Name, u.Email, u.Subscription, u.CreatedAt.Format(dateLayout))
		return nil
	})
}

func runUserSet(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		email, name := userEmail, userName
		plan := types.SubscriptionFree
		if current, ok := a.Store.User(); ok {
			if !cmd.Flags().Changed("email") {
				email = current.Email
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			plan = current.Subscription
		}
		if cmd.Flags().Changed("plan") {
			p, ok := matchFold(userSubscription, subscriptions)
			if !ok {
				return fmt.Errorf("unknown plan %q", userSubscription)
			}
			plan = p
		}

		u, err := a.Store.SetUserData(ctx, email, name, plan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved user %s <%s> (%s)\n", u.Name, u.Email, u.Subscription)
		return nil
	})
}
