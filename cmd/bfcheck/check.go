package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dcrodman/blowfish/internal/core"
	"github.com/dcrodman/blowfish/internal/keycache"
	"github.com/dcrodman/blowfish/internal/selftest"
	"github.com/dcrodman/blowfish/internal/vectors"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the vectors that would be checked",
	RunE:  ListCommand,
}

func CheckCommand(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig(ConfigFlag)
	if err != nil {
		return err
	}
	logger, logOut, err := core.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logOut.Close()

	vs, err := loadVectors(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ciphers := keycache.New(cfg.KeyCache.Expiration, cfg.KeyCache.CleanupInterval)
	report, err := selftest.NewRunner(logger, ciphers).Run(ctx, vs)
	if err != nil {
		return fmt.Errorf("self-test interrupted after %d vectors: %w", report.Total, err)
	}
	if err := report.Err(); err != nil {
		return err
	}

	fmt.Printf("%d/%d vectors passed\n", report.Passed, report.Total)
	return nil
}

func ListCommand(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig(ConfigFlag)
	if err != nil {
		return err
	}
	vs, err := loadVectors(cfg)
	if err != nil {
		return err
	}

	for _, v := range vs {
		fmt.Printf("%-12s key=%s plaintext=%s ciphertext=%s\n", v.Name, v.Key, v.Plaintext, v.Ciphertext)
	}
	return nil
}

// loadVectors picks the vector source: the --vectors flag, then the config
// file, then the built-in set.
func loadVectors(cfg *core.Config) ([]vectors.Vector, error) {
	path := cfg.Vectors.File
	if VectorsFlag != "" {
		path = VectorsFlag
	}
	if path == "" {
		return vectors.Builtin()
	}
	return vectors.Load(path)
}
