package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/bootstrap"
)

var (
	tokenEmail string
	tokenRoles []string
)

// tokenCmd prints a signed bearer token for local development
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed bearer token for local development",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		if err != nil {
			return err
		}

		roles, err := parseRoles(tokenRoles)
		if err != nil {
			return err
		}

		token, err := bootstrap.NewJWTService(cfg).GenerateToken(tokenEmail, roles...)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func parseRoles(values []string) ([]models.RoleType, error) {
	roles := make([]models.RoleType, 0, len(values))
	for _, v := range values {
		role := models.RoleType(strings.ToUpper(strings.TrimSpace(v)))
		switch role {
		case models.RoleUser, models.RoleAdmin:
			roles = append(roles, role)
		default:
			return nil, fmt.Errorf("unknown role %q, expected USER or ADMIN", v)
		}
	}
	return roles, nil
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim of the token")
	tokenCmd.Flags().StringSliceVar(&tokenRoles, "role", []string{string(models.RoleUser)}, "Role to grant (repeatable: USER, ADMIN)")
	_ = tokenCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(tokenCmd)
}
