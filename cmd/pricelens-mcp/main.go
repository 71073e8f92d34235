// SPDX-License-Identifier: Apache-2.0

// pricelens-mcp serves the pricing-extraction engine as an MCP tool over
// stdio, or runs a single extraction from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/pricelens/pricelens-mcp/internal/config"
	"github.com/pricelens/pricelens-mcp/internal/report"
	"github.com/pricelens/pricelens-mcp/internal/tool"
)

const version = "0.3.0"

var configPath string

func main() {
	// A local .env may point at a config file; missing is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "pricelens-mcp",
		Short:         "Price-record extraction engine for market-research exports",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (defaults to $PRICELENS_CONFIG)")

	root.AddCommand(newServeCmd(), newExtractCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *report.Reporter, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("PRICELENS_CONFIG")
	}
	if path == "" {
		cfg := config.Default()
		return cfg, report.New(report.ParseLevel(cfg.Logging.Level)), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, report.New(report.ParseLevel(cfg.Logging.Level)), nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the extract_pricing tool over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, reporter, err := loadConfig()
			if err != nil {
				return err
			}

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "pricelens-mcp",
				Version: version,
			}, nil)
			mcp.AddTool(server, tool.MetadataExtractPricing, tool.NewExtractPricingHandler(cfg, reporter))

			reporter.Info("[serve] pricelens-mcp %s listening on stdio", version)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

func newExtractCmd() *cobra.Command {
	var charset string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract price records from one export file and print JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reporter, err := loadConfig()
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			handler := tool.NewExtractPricingHandler(cfg, reporter)
			_, output, err := handler(cmd.Context(), nil, tool.InputExtractPricing{
				Content:  string(content),
				Filename: args[0],
				Charset:  charset,
			})
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(output.ExtractionResult, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
	cmd.Flags().StringVar(&charset, "charset", "", "declared character encoding of the input")
	return cmd
}
