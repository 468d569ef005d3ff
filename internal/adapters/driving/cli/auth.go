package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage GitHub authentication",
	Long: `Store and inspect the GitHub personal access token used to list
your gists.

The token needs the "gist" scope. It is stored in the gistfind config
file with owner-only permissions.

Examples:
  gistfind auth login          # Prompt for a token (no echo)
  gistfind auth login --token ghp_xxx
  gistfind auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a personal access token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a token is configured",
	RunE:  runAuthStatus,
}

// Flags for auth login.
var authLoginToken string

func init() {
	authLoginCmd.Flags().StringVar(&authLoginToken, "token", "", "Token value (omit to be prompted without echo)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	token := strings.TrimSpace(authLoginToken)
	if token == "" {
		read, err := promptToken(cmd)
		if err != nil {
			return err
		}
		token = read
	}

	if token == "" {
		return errors.New("no token provided")
	}

	if err := settingsService.SetToken(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	cmd.Println("Token stored.")
	return nil
}

// promptToken reads the token from the terminal without echoing it.
func promptToken(cmd *cobra.Command) (string, error) {
	cmd.Print("GitHub token (input hidden): ")

	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; pass --token instead")
	}

	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if settings.GitHub.IsConfigured() {
		cmd.Println("Token configured.")
	} else {
		cmd.Println("No token configured. Run 'gistfind auth login'.")
	}
	return nil
}
