package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/auth"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage repository credentials",
	Long: `Store the credentials used to authenticate against the repository.

Credentials are kept in the tagsmith config file with owner-only
permissions. Two methods are supported:

  basic   - HTTP Basic authentication (username and password)
  bearer  - Bearer token authentication

Examples:
  tagsmith auth basic --username admin
  tagsmith auth bearer --token "$ALFRESCO_TOKEN"
  tagsmith auth show`,
	RunE: runAuthShow,
}

var authBasicCmd = &cobra.Command{
	Use:   "basic",
	Short: "Configure HTTP Basic credentials",
	RunE:  runAuthBasic,
}

var authBearerCmd = &cobra.Command{
	Use:   "bearer",
	Short: "Configure a bearer token",
	RunE:  runAuthBearer,
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured authentication method",
	RunE:  runAuthShow,
}

// Flags for auth.
var (
	authUsername string
	authPassword string
	authToken    string
)

func init() {
	authBasicCmd.Flags().StringVar(
		&authUsername, "username", "", "Repository username")
	authBasicCmd.Flags().StringVar(
		&authPassword, "password", "", "Repository password (prompted when omitted)")
	authBearerCmd.Flags().StringVar(
		&authToken, "token", "", "Bearer token (prompted when omitted)")

	authCmd.AddCommand(authBasicCmd)
	authCmd.AddCommand(authBearerCmd)
	authCmd.AddCommand(authShowCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthBasic(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}
	if authUsername == "" {
		return errors.New("--username is required")
	}

	password := authPassword
	if password == "" {
		cmd.Print("Password: ")
		password = readSecret()
		cmd.Println()
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	if err := configStore.Set(auth.KeyAuthMethod, string(domain.AuthMethodBasic)); err != nil {
		return fmt.Errorf("failed to store auth method: %w", err)
	}
	if err := configStore.Set(auth.KeyUsername, authUsername); err != nil {
		return fmt.Errorf("failed to store username: %w", err)
	}
	if err := configStore.Set(auth.KeyPassword, password); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Basic credentials stored for %s.\n", authUsername)
	return nil
}

func runAuthBearer(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	token := authToken
	if token == "" {
		cmd.Print("Token: ")
		token = readSecret()
		cmd.Println()
	}
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := configStore.Set(auth.KeyAuthMethod, string(domain.AuthMethodBearer)); err != nil {
		return fmt.Errorf("failed to store auth method: %w", err)
	}
	if err := configStore.Set(auth.KeyToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Println("Bearer token stored.")
	return nil
}

func runAuthShow(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	method := configStore.GetString(auth.KeyAuthMethod)
	if method == "" {
		method = string(domain.AuthMethodBasic)
	}

	cmd.Printf("Method: %s\n", method)
	switch domain.AuthMethod(method) {
	case domain.AuthMethodBasic:
		username := configStore.GetString(auth.KeyUsername)
		if username == "" {
			cmd.Println("Username: (not set)")
		} else {
			cmd.Printf("Username: %s\n", username)
		}
		if configStore.GetString(auth.KeyPassword) != "" {
			cmd.Println("Password: (set)")
		} else {
			cmd.Println("Password: (not set)")
		}
	case domain.AuthMethodBearer:
		token := configStore.GetString(auth.KeyToken)
		if token == "" {
			cmd.Println("Token: (not set)")
		} else {
			cmd.Printf("Token: %s\n", maskSecret(token))
		}
	}
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo when attached to a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
