package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/rove-ml/rove/internal/artifact"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the metadata header of a .rove artifact",
		ArgsUsage: "<artifact>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("expected exactly one artifact path")
			}
			return inspect(cmd.Args().First())
		},
	}
}

func inspect(path string) error {
	r, err := artifact.NewReader(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read %s", path)
	}
	defer func() {
		_ = r.Close()
	}()

	h := r.Header()
	fmt.Printf("Artifact:  %s\n", path)
	fmt.Printf("ID:        %s\n", h.ArtifactID)
	fmt.Printf("ROM type:  %s\n", h.ROMType)
	fmt.Printf("Created:   %s (rove %s, format v%d)\n", h.CreatedAt.Format("2006-01-02 15:04:05 MST"), h.RoveVersion, h.FormatVersion)
	fmt.Printf("Features:  %s\n", strings.Join(h.Features, ", "))
	fmt.Printf("Target:    %s\n", h.Target)
	if len(h.Metadata) > 0 {
		keys := make([]string, 0, len(h.Metadata))
		for k := range h.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("Metadata:")
		for _, k := range keys {
			fmt.Printf("  %s: %s\n", k, h.Metadata[k])
		}
	}
	return nil
}
