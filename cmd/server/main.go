package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"carelink-api/internal/availability"
	"carelink-api/internal/healthlog"
	"carelink-api/internal/model"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:          "carelink",
		Short:        "Care coordination API (gRPC + grpc-web)",
		SilenceUsage: true,
		// bare invocation serves, like the old single-purpose binary
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(serveCmd(&envFile))
	root.AddCommand(slotsCmd())
	root.AddCommand(classifyCmd())
	return root
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC server and the grpc-web bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *envFile)
		},
	}
}

func slotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots LABEL...",
		Short: "Resolve which availability labels are bookable on a date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")
			nowStr, _ := cmd.Flags().GetString("now")

			now := time.Now()
			if nowStr != "" {
				t, err := time.ParseInLocation("2006-01-02T15:04", nowStr, time.Local)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				now = t
			}
			date := model.DateOf(now)
			if dateStr != "" {
				d, err := model.ParseDate(dateStr)
				if err != nil {
					return err
				}
				date = d
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(availability.Resolve(args, date, now))
		},
	}
	cmd.Flags().String("date", "", "target date YYYY-MM-DD (default today)")
	cmd.Flags().String("now", "", "override the current time, YYYY-MM-DDTHH:MM")
	return cmd
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify TYPE VALUE",
		Short: "Classify a vital reading as normal, high, low or unknown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, _ := cmd.Flags().GetString("status")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), healthlog.ResolveStatus(sel, args[0], args[1]))
			return err
		},
	}
	cmd.Flags().String("status", healthlog.Auto, "explicit status; auto re-derives it")
	return cmd
}
