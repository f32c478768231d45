package main

import (
	"fmt"
	"io"

	"github.com/openacid/testkeys"
)

type datasetsCmd struct{}

func (c *datasetsCmd) Run(out io.Writer) error {
	for _, name := range testkeys.AssetNames() {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
