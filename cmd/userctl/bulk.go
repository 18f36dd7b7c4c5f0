package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/herbiel/QuantDinger/internal/manifest"
	"github.com/herbiel/QuantDinger/internal/shardqueue"
)

// bulkResult is the outcome of one item in a bulk run.
type bulkResult struct {
	Key string
	Err error
	ran bool
}

// runBulk fans n items out over a shard executor keyed by keyFn and waits for
// all of them. Results keep the input order; items whose job never ran (the
// command context ended first) report the context error.
func runBulk(ctx context.Context, workers, n int, keyFn func(i int) string, do func(ctx context.Context, i int) error) []bulkResult {
	results := make([]bulkResult, n)
	for i := range results {
		results[i].Key = keyFn(i)
	}

	ex := shardqueue.NewShardExecutor(shardqueue.Config{
		Shards:         workers,
		QueueSize:      n + 1,
		EnqueueTimeout: time.Second,
		ErrorHandler: func(err error) {
			log.Debug().Err(err).Msg("bulk job failed")
		},
	})

	var mu sync.Mutex
	for i := 0; i < n; i++ {
		i := i
		err := ex.Submit(ctx, results[i].Key, shardqueue.JobFunc(func(ctx context.Context) error {
			err := do(ctx, i)
			mu.Lock()
			results[i].Err = err
			results[i].ran = true
			mu.Unlock()
			return err
		}))
		if err != nil {
			mu.Lock()
			results[i].Err = err
			results[i].ran = true
			mu.Unlock()
		}
	}
	ex.Stop()

	for i := range results {
		if !results[i].ran {
			results[i].Err = ctx.Err()
			if results[i].Err == nil {
				results[i].Err = context.Canceled
			}
		}
	}
	return results
}

// reportBulk prints one line per item plus a summary and returns an error when
// any item failed.
func reportBulk(w io.Writer, verb string, results []bulkResult) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: FAILED: %v\n", verb, r.Key, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s: ok\n", verb, r.Key)
	}
	fmt.Fprintf(w, "%d succeeded, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed", failed, len(results))
	}
	return nil
}

func newDeleteUsersCmd(opts *rootOptions) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete one or more users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, len(args))
			for i, a := range args {
				id, err := parseID(a)
				if err != nil {
					return err
				}
				ids[i] = id
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			results := runBulk(cmd.Context(), workers, len(ids),
				func(i int) string { return strconv.FormatInt(ids[i], 10) },
				func(ctx context.Context, i int) error { return c.DeleteUser(ctx, ids[i]) },
			)
			return reportBulk(cmd.OutOrStdout(), "delete", results)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent workers")
	return cmd
}

func newImportUsersCmd(opts *rootOptions) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "import FILE.yaml",
		Short: "Create every user listed in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			if len(m.Users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "manifest lists no users")
				return nil
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			log.Info().Int("users", len(m.Users)).Str("file", args[0]).Msg("importing users")
			results := runBulk(cmd.Context(), workers, len(m.Users),
				func(i int) string { return m.Users[i].Username },
				func(ctx context.Context, i int) error {
					_, err := c.CreateUser(ctx, m.Users[i])
					return err
				},
			)
			return reportBulk(cmd.OutOrStdout(), "create", results)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent workers")
	return cmd
}

