package arena

import (
	"fmt"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/spawner/prefabs"
)

// The script defines offset(radius) returning {x: .., y: ..}. random()
// returns a float in [0, 1) drawn from the arena's seeded source.
const scriptDispatch = `
__result = offset(__radius)
`

// Script is a tengo placement. Script errors fall back to Disk so a broken
// script never stops spawning.
type Script struct {
	path     string
	compiled *tengo.Compiled
	fallback Disk
	err      error

	// rng is only set while Offset runs.
	rng *rand.Rand
}

// LoadScript compiles a placement script from prefabs/scripts.
func LoadScript(path string) (*Script, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("arena: load script %s: %w", path, err)
	}
	return CompileScript(path, src)
}

func CompileScript(name string, src []byte) (*Script, error) {
	s := &Script{path: name}
	script := tengo.NewScript(append(append([]byte(nil), src...), scriptDispatch...))
	_ = script.Add("__radius", 0.0)
	_ = script.Add("__result", nil)
	_ = script.Add("random", &tengo.UserFunction{Name: "random", Value: s.random})
	// The stdlib rand module reads the process-wide source, so it is left out.
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("arena: compile script %s: %w", name, err)
	}
	s.compiled = compiled
	return s, nil
}

func (s *Script) random(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	if s.rng == nil {
		return nil, fmt.Errorf("arena: script %s: random called outside offset", s.path)
	}
	return &tengo.Float{Value: s.rng.Float64()}, nil
}

// Err returns the last script runtime error, if any.
func (s *Script) Err() error {
	return s.err
}

func (s *Script) Offset(rng *rand.Rand, radius float64) (float64, float64) {
	s.rng = rng
	dx, dy, err := s.run(radius)
	s.rng = nil
	if err != nil {
		s.err = err
		return s.fallback.Offset(rng, radius)
	}
	return dx, dy
}

func (s *Script) run(radius float64) (float64, float64, error) {
	if err := s.compiled.Set("__radius", radius); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("arena: run script %s: %w", s.path, err)
	}
	out := s.compiled.Get("__result").Map()
	if out == nil {
		return 0, 0, fmt.Errorf("arena: script %s: offset must return a map", s.path)
	}
	dx, okX := toFloat(out["x"])
	dy, okY := toFloat(out["y"])
	if !okX || !okY {
		return 0, 0, fmt.Errorf("arena: script %s: offset needs numeric x and y", s.path)
	}
	return dx, dy, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
