package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/openacid/testkeys"
	"github.com/pkg/errors"

	"github.com/e11jah/trieset"
)

type loadCmd struct {
	File    string `short:"f" help:"Read keys from a file, one per line ('-' for stdin)." xor:"source" env:"TRIESET_FILE"`
	Dataset string `short:"d" help:"Load keys from a bundled dataset." xor:"source" env:"TRIESET_DATASET"`
	Prefix  string `short:"p" help:"Print the keys starting with this prefix."`
	Tree    bool   `help:"Print the trie structure."`
}

func (c *loadCmd) Run(out io.Writer) error {
	keys, err := c.keys()
	if err != nil {
		return err
	}

	start := time.Now()
	s := trieset.New[string]()
	for _, k := range keys {
		s.Add(k)
	}
	st := s.Stats()
	slog.Info("set built",
		"keys", len(keys),
		"elements", st.Elements,
		"nodes", st.Nodes,
		"max_depth", st.MaxDepth,
		"took", time.Since(start),
	)

	if c.Prefix != "" {
		matched := 0
		s.ForEachPrefix(c.Prefix, func(k string) bool {
			_, err = fmt.Fprintln(out, k)
			matched++
			return err == nil
		})
		if err != nil {
			return errors.Wrap(err, "cannot write keys")
		}
		slog.Debug("prefix matched", "prefix", c.Prefix, "count", matched)
	}

	if c.Tree {
		return errors.Wrap(s.WriteTree(out), "cannot write tree")
	}
	return nil
}

func (c *loadCmd) keys() ([]string, error) {
	if c.Dataset != "" {
		if !slices.Contains(testkeys.AssetNames(), c.Dataset) {
			return nil, errors.Errorf("unknown dataset %q", c.Dataset)
		}
		return testkeys.Load(c.Dataset), nil
	}

	switch c.File {
	case "":
		return nil, errors.New("one of --file or --dataset is required")
	case "-":
		return readKeys(os.Stdin)
	}

	f, err := os.Open(c.File)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open key file")
	}
	defer f.Close()

	return readKeys(f)
}

func readKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		keys = append(keys, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read keys")
	}
	return keys, nil
}
