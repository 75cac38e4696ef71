package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Service is a long-lived resource owned by main: the audio device, the terminal reader
//
// Lifecycle:
//  1. Construction (via New*)
//  2. Start() - open devices, launch goroutines
//  3. [frame loop]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name identifies the service in logs and errors
	Name() string

	// Start begins operation; a failed Start leaves nothing to stop
	Start() error

	// Stop halts operation and releases resources
	// Must be idempotent
	Stop() error
}

// Group starts services in order and stops them in reverse
type Group struct {
	mu      sync.Mutex
	started []Service
}

// Start starts svc and records it for Stop
func (g *Group) Start(svc Service) error {
	if err := svc.Start(); err != nil {
		return fmt.Errorf("%s: %w", svc.Name(), err)
	}

	g.mu.Lock()
	g.started = append(g.started, svc)
	g.mu.Unlock()

	log.Printf("service: %s started", svc.Name())
	return nil
}

// StartOptional starts svc, logging a failure instead of returning it
// Reports whether the service is running
func (g *Group) StartOptional(svc Service) bool {
	if err := g.Start(svc); err != nil {
		log.Printf("service: %v (continuing without it)", err)
		return false
	}
	return true
}

// Running returns the names of started services in start order
func (g *Group) Running() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, len(g.started))
	for i, svc := range g.started {
		names[i] = svc.Name()
	}
	return names
}

// Stop stops every started service, newest first
// Safe to call more than once
func (g *Group) Stop() error {
	g.mu.Lock()
	started := g.started
	g.started = nil
	g.mu.Unlock()

	var errs []error
	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", started[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
