package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqsense/modelviewer/config"
	"github.com/seqsense/modelviewer/remote"
	"github.com/seqsense/modelviewer/tui"
	"github.com/seqsense/modelviewer/viewer"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "viewerctl",
		Short:        "model viewer host tools",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "viewer.yaml", "viewer config file (yaml)")

	rootCmd.AddCommand(newInitCmd(), newServeCmd(), newSimulateCmd(), newTUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logPrint(msg interface{}) {
	fmt.Fprintln(os.Stderr, msg)
}

var errConfigExists = errors.New("config file already exists")

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "write the default config to be edited",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("%s: %w", configFile, errConfigExists)
			}
			if err := config.Save(configFile, config.DefaultConfig()); err != nil {
				return err
			}
			logPrint(configFile + " written")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newTUICmd() *cobra.Command {
	var remoteURL string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "control the camera from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			// Messages go to the panel status line instead of the
			// alternate screen.
			v := viewer.New(cfg, nil)
			if remoteURL == "" {
				return tui.Run(v, nil)
			}
			c, err := remote.Dial(remoteURL)
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", remoteURL, err)
			}
			defer c.Close()
			return tui.Run(v, c)
		},
	}
	cmd.Flags().StringVar(&remoteURL, "remote", "", "relay URL to mirror commands to, e.g. ws://localhost:8080/ws")
	return cmd
}
