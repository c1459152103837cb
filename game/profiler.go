package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate
// drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	wg              sync.WaitGroup
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
	}, nil
}

// CaptureProfile starts a background capture. It returns an error when a
// capture is running or the cooldown has not elapsed.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Millisecond))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("fps-drop-%s-%s", timestamp, reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()

	return nil
}

// Wait blocks until a running capture has finished.
func (p *Profiler) Wait() {
	p.wg.Wait()
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to: %s", tracePath)
	return nil
}

func (p *Profiler) logSummary(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("Warning: could not stat profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s (%.2f KB): heap %d KB, sys %d KB, %d GCs; view with go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, m.HeapAlloc/1024, m.Sys/1024, m.NumGC, profilePath)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
