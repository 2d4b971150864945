package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/elemental-clash/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the provider configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		baseURL, _ := cmd.Flags().GetString("base-url")
		keyEnv, _ := cmd.Flags().GetString("key-env")
		chat, _ := cmd.Flags().GetString("chat-model")

		cfg := &config.Config{
			Provider:     config.Provider(provider),
			BaseURL:      baseURL,
			APIKeySource: keyEnv,
			ChatModel:    chat,
		}
		// Resolve once so a bad provider is rejected before it is saved.
		if _, err := cfg.Resolve(func(string) string { return "unused" }); err != nil {
			return err
		}
		path, err := config.GetConfigFilePath()
		if err != nil {
			return err
		}
		if err := config.SaveConfig(path, cfg); err != nil {
			return err
		}
		pterm.Success.Printfln("Wrote %s", path)
		return nil
	},
}

func init() {
	configCmd.Flags().String("provider", string(config.ProviderHosted), "local (Ollama) or hosted (GitHub Models)")
	configCmd.Flags().String("base-url", "", "Override the provider base URL")
	configCmd.Flags().String("key-env", "", "Environment variable holding the API key")
	configCmd.Flags().String("chat-model", "", "Chat model used by judge")
	rootCmd.AddCommand(configCmd)
}
