package runner

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// ScriptSpawner asks a JavaScript function which obstacle to spawn. The script
// must define
//
//	function spawn(frame) { return "cactus" | "creeper" | null }
//
// Any other return value spawns nothing. When the script throws, the error is
// logged once and the fallback spawner takes over for the rest of the process.
type ScriptSpawner struct {
	mu       sync.Mutex
	vm       *goja.Runtime
	spawn    goja.Callable
	fallback Spawner
	failed   bool
}

// NewScriptSpawner compiles code and checks that it defines spawn.
func NewScriptSpawner(code string, fallback Spawner) (*ScriptSpawner, error) {
	vm := goja.New()
	if _, err := vm.RunString(code); err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	v := vm.Get("spawn")
	if v == nil || goja.IsUndefined(v) {
		return nil, fmt.Errorf("script must define a 'spawn' function")
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("'spawn' must be a function")
	}

	return &ScriptSpawner{vm: vm, spawn: fn, fallback: fallback}, nil
}

// LoadScriptSpawner reads a spawn script from path.
func LoadScriptSpawner(path string, fallback Spawner) (*ScriptSpawner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn script: %w", err)
	}
	s, err := NewScriptSpawner(string(data), fallback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *ScriptSpawner) Spawn(frame int) (ObstacleKind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed {
		return s.fallbackSpawn(frame)
	}

	res, err := s.spawn(goja.Undefined(), s.vm.ToValue(frame))
	if err != nil {
		log.Printf("spawn script failed at frame %d, using fallback: %v", frame, err)
		s.failed = true
		return s.fallbackSpawn(frame)
	}
	if res == nil || goja.IsUndefined(res) || goja.IsNull(res) {
		return 0, false
	}

	switch strings.ToLower(res.String()) {
	case "cactus":
		return Cactus, true
	case "creeper":
		return Creeper, true
	default:
		return 0, false
	}
}

// Failed reports whether the script has been replaced by the fallback.
func (s *ScriptSpawner) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

func (s *ScriptSpawner) fallbackSpawn(frame int) (ObstacleKind, bool) {
	if s.fallback == nil {
		return 0, false
	}
	return s.fallback.Spawn(frame)
}
