package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/scottcagno/storage/pkg/hashmap/openaddr"
	"github.com/scottcagno/storage/pkg/util"
)

func main() {
	// Load the application configuration
	cfg, err := LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out: os.Stderr,
		})
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("openaddr demo failed")
	}
	log.Info().Msg("done!")
}

func run(cfg *Config) error {
	// the basics
	tb := openaddr.New[string, int](openaddr.WithLogger(log.Logger))
	tb.Put("one", 1)
	tb.Put("two", 2)
	tb.Put("three", 3)
	fmt.Printf("table=%s, len=%d\n", tb, tb.Len())

	v, ok := tb.Remove("two")
	fmt.Printf("remove(two)=%d,%v\n", v, ok)
	_, ok = tb.Get("two")
	fmt.Printf("get(two) found=%v, len=%d\n", ok, tb.Len())

	// fill a table up far enough to make it grow a few times
	words := util.Words(uint64(cfg.Words), cfg.Words, 8)
	filled := openaddr.New[string, int](
		openaddr.WithCapacity(cfg.Capacity),
		openaddr.WithLogger(log.Logger),
	)
	func() {
		defer util.TimeThis(util.Msg("fill"))
		for i, w := range words {
			filled.Put(w, i)
		}
	}()
	for i, w := range words {
		if got, ok := filled.Get(w); !ok || got != i {
			return errors.Errorf("lost %q after growth: got %d,%v", w, got, ok)
		}
	}
	log.Info().
		Int("len", filled.Len()).
		Int("capacity", filled.Capacity()).
		Float64("percent_full", filled.PercentFull()).
		Int("max_probe_distance", filled.MaxProbeDistance()).
		Msg("filled table")

	// drop every other word, the probe chains must stay intact
	for i := 0; i < len(words); i += 2 {
		filled.Remove(words[i])
	}
	if err := filled.Check(); err != nil {
		return errors.Wrap(err, "checking table after removals")
	}

	// a fresh iterator fails fast once the key set changes under it
	it := filled.Iterator()
	filled.Put("a-brand-new-key", -1)
	if _, err := it.Next(); errors.Is(err, openaddr.ErrConcurrentModification) {
		log.Info().Err(err).Msg("iterator failed fast as expected")
	} else {
		return errors.Errorf("expected a concurrent modification error, got %v", err)
	}
	return nil
}
