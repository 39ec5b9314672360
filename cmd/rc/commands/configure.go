package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewConfigureCommand creates the configure command. It stores the secret API
// key, default project, and endpoint in ~/.revenuecat/config.yml.
func NewConfigureCommand() *cobra.Command {
	var (
		apiKey    string
		projectID string
		endpoint  string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long:  "Store the secret API key and default project for subsequent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if apiKey == "" {
				_, _ = os.Stdout.WriteString("Secret API key (sk_...): ")

				keyBytes, err := term.ReadPassword(syscall.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(keyBytes)

				_, _ = os.Stdout.WriteString("\n") // Add newline after password input
			}

			if apiKey != "" {
				config.Key = apiKey
			}

			if projectID == "" && config.Project == "" {
				_, _ = os.Stdout.WriteString("Default project ID (optional): ")
				_, _ = fmt.Scanln(&projectID)
			}

			if projectID != "" {
				config.Project = projectID
			}

			if endpoint != "" {
				config.API = endpoint
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			path, _ := configFilePath()
			_, _ = fmt.Fprintf(os.Stdout, "Configuration saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "secret API key (prompted when omitted)")
	cmd.Flags().StringVar(&projectID, "project", "", "default project ID")
	cmd.Flags().StringVar(&endpoint, "api", "", "API endpoint URL")

	return cmd
}
