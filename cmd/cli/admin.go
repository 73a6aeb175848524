package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/pkg/bcryptutil"
	"github.com/veridian-studio/backoffice/pkg/database"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin users",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision an admin user",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if name == "" || email == "" || password == "" {
			return fmt.Errorf("--name, --email and --password are required")
		}
		r := adminuser.Role(role)
		if !r.Valid() {
			return fmt.Errorf("role must be admin or super_admin, got %q", role)
		}

		db, err := database.Connect(viper.GetString("db_dsn"))
		if err != nil {
			return err
		}
		defer db.Close()

		passwords := &bcryptutil.BcryptUtilsImpl{}
		hash, err := passwords.GenerateHash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		repo := adminuser.NewPostgresRepository(db)
		existing, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("an admin with email %s already exists", email)
		}

		admin := &adminuser.AdminUser{
			Name:         name,
			Email:        email,
			Role:         r,
			PasswordHash: hash,
		}
		if err := repo.Create(ctx, admin); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Printf("Created %s admin %s (%s)\n", admin.Role, admin.Name, admin.ID)
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin users",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect(viper.GetString("db_dsn"))
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		admins, err := adminuser.NewPostgresRepository(db).List(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tCREATED")
		for _, a := range admins {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.Name, a.Email, a.Role, a.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	adminCreateCmd.Flags().String("name", "", "full name")
	adminCreateCmd.Flags().String("email", "", "email address")
	adminCreateCmd.Flags().String("password", "", "login password")
	adminCreateCmd.Flags().String("role", "admin", "admin or super_admin")

	adminCmd.AddCommand(adminCreateCmd, adminListCmd)
	rootCmd.AddCommand(adminCmd)
}
