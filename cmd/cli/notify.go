package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/pkg/database"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Notification pipeline tools",
}

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test notification to every admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		sendEmail, _ := cmd.Flags().GetBool("email")

		db, err := database.Connect(viper.GetString("db_dsn"))
		if err != nil {
			return err
		}
		defer db.Close()

		logger := observability.NewLogger("backoffice-cli")
		emailer := notification.NewEmailer(os.Getenv("RESEND_API_KEY"), os.Getenv("FROM_EMAIL"))
		renderer := notification.NewRenderer(getStringOr("APP_BASE_URL", "http://localhost:3000"))

		service := notification.NewService(
			notification.NewPostgresRepository(db),
			adminuser.NewPostgresRepository(db),
			notification.NewInlineDispatcher(emailer),
			renderer,
			logger,
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		meta, err := notification.MarshalMeta(notification.SystemAlertMeta{
			Severity: "info",
			Source:   "cli",
		})
		if err != nil {
			return err
		}

		n, err := service.Create(ctx, notification.CreateInput{
			Type:      notification.TypeSystemAlert,
			Title:     "Test notification",
			Message:   "This is a test notification sent from the operations CLI.",
			Target:    notification.ByRole(adminuser.RoleAdmin),
			Metadata:  meta,
			SendEmail: sendEmail,
		})
		if err != nil {
			return fmt.Errorf("failed to create test notification: %w", err)
		}

		fmt.Printf("Created notification %s (email: %v)\n", n.ID, sendEmail)
		return nil
	},
}

func getStringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	notifyTestCmd.Flags().Bool("email", false, "also send the email")
	notifyCmd.AddCommand(notifyTestCmd)
	rootCmd.AddCommand(notifyCmd)
}
