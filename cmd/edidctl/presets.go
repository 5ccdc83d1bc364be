package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/praqsys/edidctl/internal/edid"
	"github.com/praqsys/edidctl/internal/preset"
	"github.com/spf13/cobra"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [id]",
		Short: "List standard timing presets, or print one as a parameter file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			registry := preset.Builtin()

			if len(args) == 0 {
				for _, p := range registry.List() {
					fmt.Printf("%-20s %-18s %s\n", p.ID, p.Name, p.Description)
				}
				return nil
			}

			p, ok := registry.Resolve(args[0])
			if !ok {
				return fmt.Errorf("preset %q not found", args[0])
			}
			return toml.NewEncoder(os.Stdout).Encode(p.Params)
		},
	}
}

// resolveParams loads parameters from a file, a preset, or both: a preset
// can serve as the base that a sparse parameter file overrides.
func resolveParams(inPath, presetID string) (edid.Params, error) {
	params := edid.DefaultParams()

	if presetID != "" {
		p, ok := preset.Builtin().Resolve(presetID)
		if !ok {
			return edid.Params{}, fmt.Errorf("preset %q not found", presetID)
		}
		params = p.Params
	}

	if inPath != "" {
		if _, err := toml.DecodeFile(inPath, &params); err != nil {
			return edid.Params{}, fmt.Errorf("load parameters: %w", err)
		}
	}

	if inPath == "" && presetID == "" {
		return edid.Params{}, fmt.Errorf("either --input or --preset is required")
	}
	return params, nil
}
