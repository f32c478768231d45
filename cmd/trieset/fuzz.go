package main

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"maps"
	"math/rand"
	"slices"

	"github.com/pkg/errors"

	"github.com/e11jah/trieset"
)

type fuzzCmd struct {
	Steps      int   `help:"Number of random operations." default:"100000"`
	Max        int   `help:"Largest value drawn." default:"300"`
	Seed       int64 `help:"Random seed." default:"1" env:"TRIESET_SEED"`
	CheckEvery int   `help:"Validate the trie structure every N steps, 0 disables it." default:"1000"`
}

type refSet map[int]struct{}

func (r refSet) Contains(v int) bool {
	_, ok := r[v]
	return ok
}

func (r refSet) All() iter.Seq[int] {
	return maps.Keys(r)
}

func (c *fuzzCmd) Run(out io.Writer) error {
	if c.Max <= 0 {
		return errors.Errorf("max must be positive, got %d", c.Max)
	}

	gen := rand.New(rand.NewSource(c.Seed))
	s := trieset.New[int]()
	ref := refSet{}

	for i := 0; i < c.Steps; i++ {
		v := gen.Intn(c.Max) + 1
		op := "add"
		if gen.Intn(3) > 0 {
			s.Add(v)
			ref[v] = struct{}{}
		} else {
			op = "remove"
			if len(ref) > 0 && gen.Intn(3) > 0 {
				members := slices.Sorted(maps.Keys(ref))
				v = members[gen.Intn(len(members))]
			}
			s.Remove(v)
			delete(ref, v)
		}

		if !s.Equal(ref) || s.Size() != len(ref) {
			return errors.Errorf("sets diverged at step %d after %s %d", i, op, v)
		}
		if c.CheckEvery > 0 && i%c.CheckEvery == 0 {
			if err := s.Validate(); err != nil {
				return errors.Wrapf(err, "step %d", i)
			}
			slog.Debug("checkpoint", "step", i, "size", len(ref))
		}
	}

	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "final state")
	}

	st := s.Stats()
	slog.Info("fuzz passed", "steps", c.Steps, "seed", c.Seed, "size", st.Elements)
	_, err := fmt.Fprintf(out, "steps=%d elements=%d nodes=%d max_depth=%d\n", c.Steps, st.Elements, st.Nodes, st.MaxDepth)
	return err
}
