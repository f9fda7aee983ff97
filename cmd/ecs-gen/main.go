// Command ecs-gen writes the generated component and system set used by
// cmd/ecs-stress.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/imports"
)

type systemSpec struct {
	Name  string
	Write string
	Read  string
}

type config struct {
	ComponentCount int
	SystemCount    int
	Components     []string
	Systems        []systemSpec
}

func newConfig(components, systems int) (config, error) {
	if components < 2 {
		return config{}, eris.Errorf("need at least 2 components, got %d", components)
	}
	if systems < 0 {
		return config{}, eris.Errorf("negative system count %d", systems)
	}

	cfg := config{
		ComponentCount: components,
		SystemCount:    systems,
	}
	for i := range components {
		cfg.Components = append(cfg.Components, fmt.Sprintf("Component%d", i))
	}

	// Each system writes one component and reads another, spread across the set.
	for i := range systems {
		write := i % components
		read := (i*7 + 3) % components
		if read == write {
			read = (read + 1) % components
		}
		cfg.Systems = append(cfg.Systems, systemSpec{
			Name:  fmt.Sprintf("System%d", i),
			Write: cfg.Components[write],
			Read:  cfg.Components[read],
		})
	}
	return cfg, nil
}

const sourceTemplate = `// Code generated by ecs-gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/slotecs/ecs"
)

const (
	componentCount = {{.ComponentCount}}
	systemCount    = {{.SystemCount}}
)
{{range .Components}}
type {{.}} struct {
	Value float64
	Ticks uint32
}
{{end}}
// RegisterAllGeneratedComponents registers every generated component type.
func RegisterAllGeneratedComponents(r ecs.Registrar) {
{{- range .Components}}
	ecs.RegisterComponent[{{.}}](r)
{{- end}}
}

var spawners = [componentCount]func(b *ecs.EntityBuilder){
{{- range .Components}}
	func(b *ecs.EntityBuilder) { b.With({{.}}{Value: rand.Float64()}) },
{{- end}}
}

// SpawnRandomEntity spawns an entity carrying numComponents distinct random components.
func SpawnRandomEntity(w *ecs.World, numComponents int) ecs.EntityId {
	b := w.Create()
	defer b.Discard()

	for _, i := range rand.Perm(componentCount)[:min(numComponents, componentCount)] {
		spawners[i](b)
	}
	return b.Build()
}
{{range .Systems}}
type {{.Name}} struct {
	Entities ecs.Query[struct {
		*{{.Write}}
		{{.Read}}
	}]
}

func (s *{{.Name}}) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		item.{{.Write}}.Value += item.{{.Read}}.Value * frame.DeltaTime
		item.{{.Write}}.Ticks++
	}
}
{{end}}
// RegisterAllGeneratedSystems registers every generated system with scheduler.
func RegisterAllGeneratedSystems(scheduler *ecs.Scheduler) {
{{- range .Systems}}
	scheduler.Register(&{{.Name}}{})
{{- end}}
}
`

var source = template.Must(template.New("generated").Parse(sourceTemplate))

// render executes the template and formats the result.
func render(cfg config, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := source.Execute(&buf, cfg); err != nil {
		return nil, eris.Wrap(err, "executing template")
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "formatting generated source")
	}
	return formatted, nil
}

func run(out string, components, systems int) error {
	cfg, err := newConfig(components, systems)
	if err != nil {
		return err
	}

	src, err := render(cfg, out)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return eris.Wrapf(err, "writing %s", out)
	}

	log.Info().
		Str("file", out).
		Int("components", components).
		Int("systems", systems).
		Int("bytes", len(src)).
		Msg("generated")
	return nil
}

func main() {
	out := flag.String("out", "cmd/ecs-stress/generated.go", "Path of the generated file.")
	components := flag.Int("components", 32, "Number of component types to generate.")
	systems := flag.Int("systems", 8, "Number of systems to generate.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(*out, *components, *systems); err != nil {
		log.Fatal().Err(err).Msg("ecs-gen failed")
	}
}
