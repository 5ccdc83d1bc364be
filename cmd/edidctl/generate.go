package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/praqsys/edidctl/internal/edid"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	var (
		inPath   string
		outPath  string
		presetID string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Encode a parameter file (or preset) into a .bin EDID block",
		RunE: func(_ *cobra.Command, _ []string) error {
			params, err := resolveParams(inPath, presetID)
			if err != nil {
				return err
			}

			if errs := edid.Validate(params); len(errs) != 0 {
				printFieldErrors(errs)
				return fmt.Errorf("parameters failed validation")
			}

			blob := edid.Encode(params)
			name := outPath
			if name == "" {
				name = edid.Filename(params)
			}
			if err := os.WriteFile(name, blob, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", name, len(blob))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "TOML parameter file")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default: derived from display name)")
	cmd.Flags().StringVarP(&presetID, "preset", "p", "", "start from a preset instead of a file")
	return cmd
}

func validateCmd() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a parameter file without encoding it",
		RunE: func(_ *cobra.Command, _ []string) error {
			params, err := loadParamsFile(inPath)
			if err != nil {
				return err
			}
			errs := edid.Validate(params)
			if len(errs) == 0 {
				fmt.Println("ok")
				return nil
			}
			printFieldErrors(errs)
			return fmt.Errorf("%d field error(s)", len(errs))
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "TOML parameter file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func loadParamsFile(path string) (edid.Params, error) {
	params := edid.DefaultParams()
	if _, err := toml.DecodeFile(path, &params); err != nil {
		return edid.Params{}, fmt.Errorf("load parameters: %w", err)
	}
	return params, nil
}

func printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(os.Stderr, "%s: %s\n", f, errs[f])
	}
}
