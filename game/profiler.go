package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures performance data when the frame rate tanks
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a new profiler instance
func NewProfiler() *Profiler {
	profilesDir := "profiles"
	os.MkdirAll(profilesDir, 0755)

	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     profilesDir,
		captureDuration: 5 * time.Second,
	}
}

// CaptureProfile captures a CPU profile and an execution trace in the
// background. Captures are rate-limited by the cooldown.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("slow-frame-%s-%s", timestamp, reason)

	// Capture in a goroutine to avoid blocking the game loop
	go func() {
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
				fmt.Printf("Error capturing CPU profile: %v\n", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				fmt.Printf("Error capturing trace: %v\n", err)
			}
		}()
		wg.Wait()
	}()

	return nil
}

// captureCPUProfile records a CPU profile for the capture duration
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

	fmt.Printf("CPU profile saved to: %s\n", profilePath)
	return nil
}

// captureTrace records an execution trace for the capture duration
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

	fmt.Printf("Trace saved to: %s\n", tracePath)
	return nil
}

// IsProfiling returns whether a capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
