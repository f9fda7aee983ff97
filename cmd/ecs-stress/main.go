// Command ecs-stress populates a World with randomly composed entities, runs
// the generated systems for a fixed duration and prints a markdown report.
package main

//go:generate go run ../ecs-gen -out generated.go

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/slotecs/ecs"
)

// churnSystem destroys a random sample of entities each frame and spawns the
// same number of replacements, so slots are constantly recycled.
type churnSystem struct {
	rate    float64
	rng     *rand.Rand
	churned int64
}

func (c *churnSystem) Execute(frame *ecs.UpdateFrame) {
	if c.rate <= 0 {
		return
	}

	destroyed := 0
	for id := range frame.World.Entities() {
		if c.rng.Float64() < c.rate {
			frame.Commands.Destroy(id)
			destroyed++
		}
	}

	w := frame.World
	for range destroyed {
		n := c.rng.Intn(5) + 1
		frame.Commands.Defer(func() { SpawnRandomEntity(w, n) })
	}
	c.churned += int64(destroyed)
}

type options struct {
	duration       time.Duration
	entities       int
	churn          float64
	gcPauseMetrics bool
	profile        string
}

func main() {
	var opts options
	flag.DurationVar(&opts.duration, "duration", 10*time.Second, "The total duration the test should run for.")
	flag.IntVar(&opts.entities, "entities", 10000, "The initial number of entities to create.")
	flag.Float64Var(&opts.churn, "churn", 0.01, "Fraction of entities destroyed and respawned each frame.")
	flag.BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.StringVar(&opts.profile, "profile", "", "Write a profile to the working directory: cpu, mem or trace.")
	verbose := flag.Bool("v", false, "Log world events at debug level.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if stop, err := startProfile(opts.profile); err != nil {
		log.Fatal().Err(err).Msg("invalid profile mode")
	} else {
		defer stop()
	}

	report, err := run(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("stress test failed")
	}

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

func startProfile(mode string) (func(), error) {
	var option func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfile
	case "trace":
		option = profile.TraceProfile
	default:
		return nil, eris.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
}

func run(opts options) (*Report, error) {
	if opts.entities < 0 {
		return nil, eris.Errorf("negative entity count %d", opts.entities)
	}

	log.Info().Msg("starting ECS stress test")

	registry := ecs.NewComponentRegistry()
	RegisterAllGeneratedComponents(registry)
	w := ecs.NewWorld(registry,
		ecs.WithLogger(log.Logger),
		ecs.WithEntityCapacity(opts.entities),
	)
	scheduler := ecs.NewScheduler(w)
	RegisterAllGeneratedSystems(scheduler)

	churn := &churnSystem{rate: opts.churn, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	scheduler.Register(churn)

	log.Info().Int("entities", opts.entities).Msg("populating world")
	for range opts.entities {
		SpawnRandomEntity(w, rand.Intn(5)+1)
	}

	report := &Report{
		Duration:       opts.duration,
		Entities:       opts.entities,
		Components:     componentCount,
		Systems:        systemCount,
		ChurnRate:      opts.churn,
		GCPauseMetrics: opts.gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", opts.duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), opts.duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Churned = churn.churned
	report.World = w.CollectStats()
	report.Scheduler = *scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int64("updates", report.TotalUpdates).Msg("simulation finished")
	return report, nil
}
