package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/echoslam/gsi"
	"github.com/echoslam/gsi/dispatch"
	"github.com/spf13/cobra"
)

func recallCmd() *cobra.Command {
	var (
		addr      string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Save every snapshot as a JSON file for recalling later",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}

				outputDir = wd
			}

			return gsi.New(addr).
				Register(recorder(outputDir, slog.Default())).
				Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:3000", "Address to listen on; must match the uri in the game's cfg file")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the JSON event files (default: current directory)")

	return cmd
}

// recorder writes each raw snapshot into dir under a timestamped
// DotaGSI_*.json name. Write failures are logged and the snapshot is lost;
// the game keeps posting new ones regardless.
func recorder(dir string, log *slog.Logger) dispatch.Func {
	return func(event []byte) {
		name := fmt.Sprintf("DotaGSI_%s.json", time.Now().Format("2006-01-02T15-04-05.000000000"))
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, event, 0o644); err != nil {
			log.Error("saving snapshot", "path", path, "err", err)
			return
		}

		log.Info("snapshot saved", "path", path)
	}
}
