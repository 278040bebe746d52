package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/lixenwraith/hitscan/journal"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/telemetry"
)

// report prints the session summary after the terminal is restored
func report(w io.Writer, reg *status.Registry, reader sdkmetric.Reader, store *journal.Store, weaponName string, logger zerolog.Logger) {
	totals, err := telemetry.Totals(context.Background(), reader)
	if err != nil {
		logger.Error().Err(err).Msg("Metric collection failed")
	} else {
		fmt.Fprintln(w, "metrics:")
		for _, name := range slices.Sorted(maps.Keys(totals)) {
			fmt.Fprintf(w, "  %-32s %10.0f\n", name, totals[name])
		}
	}

	fmt.Fprintf(w, "counters %s:\n", weaponName)
	reg.Ints.RangePrefix("weapon."+weaponName+".", func(key string, ptr *atomic.Int64) {
		fmt.Fprintf(w, "  %-40s %8d\n", key, ptr.Load())
	})

	snap := reg.Snapshot()
	fmt.Fprintf(w, "scheduler: run %d, cancelled %d, skipped %d; ticks %d\n",
		snap.Int("scheduler.run"), snap.Int("scheduler.cancelled"),
		snap.Int("scheduler.skipped_dead_owner"), snap.Int("engine.ticks"))

	if store == nil {
		return
	}
	if err := store.Flush(); err != nil {
		logger.Error().Err(err).Msg("Journal flush failed")
	}
	sum, err := store.Summary(weaponName)
	if err != nil {
		logger.Error().Err(err).Msg("Journal summary failed")
		return
	}
	fmt.Fprintf(w, "journal %s: fired %d, hits %d, misses %d, accuracy %.1f%%, damage %.0f, rejected %d %v\n",
		sum.Weapon, sum.Fired, sum.Hits, sum.Misses, sum.Accuracy()*100, sum.TotalDamage, sum.Rejected, sum.Rejections)
}
