package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/rove-ml/rove/inputspec"
	"github.com/rove-ml/rove/rom"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a ROM configuration file against its subtype's schema",
		ArgsUsage: "<config.xml>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("expected exactly one configuration path")
			}
			return validate(cmd.Args().First())
		},
	}
}

func validate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "cannot open %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	node, err := inputspec.ParseXML(f)
	if err != nil {
		return errors.Wrapf(err, "cannot parse %s", path)
	}

	subtype, ok := node.Attrs["subType"]
	if !ok {
		return errors.Errorf("%s: ROM node has no subType attribute (known subtypes: %s)",
			path, strings.Join(rom.Known(), ", "))
	}
	spec, err := rom.Spec(subtype)
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	if _, err := spec.Validate(node); err != nil {
		return errors.Wrapf(err, "%s is not a valid %s configuration", path, subtype)
	}

	fmt.Printf("%s: valid %s configuration\n", path, subtype)
	return nil
}
