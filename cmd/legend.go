package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slotgrid/config"
	"slotgrid/keymap"
)

// legendCmd prints the command panel text.
var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Print the key legend",
	Long:  `Print the commands shown in the side panel, after applying any key bindings from the config file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		keys, err := keymap.New(cfg.Keys)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, keymap.LegendTitle)
		for _, line := range keys.Legend() {
			fmt.Fprintln(out, "  "+line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(legendCmd)
}
