package deadlock

import "fmt"

// wait records one process waiting for one resource, in request order.
type wait struct {
	process  string
	resource string
}

// System models processes and single-instance resources together with the
// hold and wait edges between them. The zero value is not usable; call
// NewSystem.
//
// Iteration anywhere in the package follows insertion order, so a given
// build sequence always yields the same detection run.
type System struct {
	procs   []string
	procSet map[string]struct{}

	ress   []string
	resSet map[string]struct{}

	holder map[string]string // resource name -> holding process
	waits  []wait
}

// NewSystem returns an empty system.
func NewSystem() *System {
	return &System{
		procSet: make(map[string]struct{}),
		resSet:  make(map[string]struct{}),
		holder:  make(map[string]string),
	}
}

// AddProcess registers a process. Re-adding a known process is a no-op.
func (s *System) AddProcess(name string) error {
	if name == "" {
		return ErrEmptyID
	}
	if _, ok := s.procSet[name]; ok {
		return nil
	}
	s.procSet[name] = struct{}{}
	s.procs = append(s.procs, name)

	return nil
}

// AddResource registers a single-instance resource. Re-adding a known
// resource is a no-op.
func (s *System) AddResource(name string) error {
	if name == "" {
		return ErrEmptyID
	}
	if _, ok := s.resSet[name]; ok {
		return nil
	}
	s.resSet[name] = struct{}{}
	s.ress = append(s.ress, name)

	return nil
}

// Hold records that process holds resource. Every resource has at most one
// holder; a second Hold on the same resource fails with ErrResourceHeld.
func (s *System) Hold(process, resource string) error {
	if err := s.check(process, resource); err != nil {
		return err
	}
	if owner, ok := s.holder[resource]; ok {
		return fmt.Errorf("%w: %s held by %s", ErrResourceHeld, resource, owner)
	}
	s.holder[resource] = process

	return nil
}

// Wait records that process is blocked waiting for resource. Repeating an
// identical wait is a no-op.
func (s *System) Wait(process, resource string) error {
	if err := s.check(process, resource); err != nil {
		return err
	}
	for _, w := range s.waits {
		if w.process == process && w.resource == resource {
			return nil
		}
	}
	s.waits = append(s.waits, wait{process: process, resource: resource})

	return nil
}

// Processes returns the registered process names in insertion order.
func (s *System) Processes() []string {
	out := make([]string, len(s.procs))
	copy(out, s.procs)

	return out
}

// Resources returns the registered resource names in insertion order.
func (s *System) Resources() []string {
	out := make([]string, len(s.ress))
	copy(out, s.ress)

	return out
}

// Holder reports the process holding resource, if any.
func (s *System) Holder(resource string) (string, bool) {
	p, ok := s.holder[resource]

	return p, ok
}

func (s *System) check(process, resource string) error {
	if process == "" || resource == "" {
		return ErrEmptyID
	}
	if _, ok := s.procSet[process]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProcess, process)
	}
	if _, ok := s.resSet[resource]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	return nil
}

// waitsOf returns the resources process waits for, in request order.
func (s *System) waitsOf(process string) []string {
	var out []string
	for _, w := range s.waits {
		if w.process == process {
			out = append(out, w.resource)
		}
	}

	return out
}
