package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/auth"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tagsmith configuration",
	Long: `View and edit the tagsmith configuration file.

Keys use dot notation and map to TOML tables, e.g. "alfresco.base_url"
is stored as base_url under the [alfresco] table.

Examples:
  tagsmith config set alfresco.base_url https://alfresco.example.com
  tagsmith config set worker.strategy bulk
  tagsmith config get alfresco.base_url
  tagsmith config show`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

// secretKeys are masked in show output.
var secretKeys = map[string]bool{
	auth.KeyPassword: true,
	auth.KeyToken:    true,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	keys := []string{
		keyBaseURL, keyRate, keyPageSize, keyStrategy,
		keyNATSURL, keyNATSStream, keyNATSSubject, keyNATSDurable,
		auth.KeyAuthMethod, auth.KeyUsername, auth.KeyPassword, auth.KeyToken,
	}
	sort.Strings(keys)

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	for _, key := range keys {
		value, ok := configStore.Get(key)
		if !ok {
			continue
		}
		display := fmt.Sprintf("%v", value)
		if secretKeys[key] {
			display = maskSecret(display)
		}
		cmd.Printf("%s = %s\n", key, display)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	key := strings.TrimSpace(args[0])
	value, ok := configStore.Get(key)
	if !ok {
		return fmt.Errorf("key %q is not set", key)
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	key := strings.TrimSpace(args[0])
	if err := configStore.Set(key, coerceValue(args[1])); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("%s updated.\n", key)
	return nil
}

// coerceValue stores numeric and boolean input as their TOML types so the
// typed getters can read them back.
func coerceValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
