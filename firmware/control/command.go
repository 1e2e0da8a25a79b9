// Package control owns the two firmware loops: the producer polling the
// controller and the consumer driving the actuators, each on its own
// fixed-period ticker.
package control

import (
	"sync"

	"github.com/HudsonReynolds2/mapper/firmware/drive"
)

// Command is the full actuator command set derived from one controller
// snapshot. The producer replaces it wholesale; the consumer acts on
// whatever set is current, which may be up to one producer period old.
type Command struct {
	Wheels drive.WheelSpeeds

	Dpad     byte
	Throttle uint16
	Brake    uint16
}

// Store hands the latest complete command set from the producer to the
// consumer. Both sides copy the whole struct under the lock, so a read
// never observes a partially written set.
type Store struct {
	mu  sync.Mutex
	cmd Command
}

// Put replaces the stored command set.
func (s *Store) Put(c Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd = c
}

// Get returns a copy of the latest command set.
func (s *Store) Get() Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd
}
