/*
 * Copyright (C) 2023 by Jason Figge
 */

package raycaster

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var ErrUnknown = errors.New("unknown raycaster")

// Factory builds a fresh raycaster.
type Factory func() Raycaster

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

func init() {
	Register("nop", func() Raycaster { return Nop{} })
	Register("test", func() Raycaster { return &Gradient{} })
}

// Register makes a raycaster available by name. Registering a name twice
// replaces the earlier factory.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		panic("raycaster: Register needs a name and a factory")
	}
	mu.Lock()
	defer mu.Unlock()
	factories[name] = f
}

// named carries the registry name a raycaster was built under.
type named struct {
	Raycaster
	name string
}

func (n named) Name() string { return n.name }

// Unwrap returns the raycaster New built.
func (n named) Unwrap() Raycaster { return n.Raycaster }

// New builds the raycaster registered under name. Name reports that name
// for the result.
func New(name string) (Raycaster, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknown, "%q", name)
	}
	return named{Raycaster: f(), name: name}, nil
}

// Unwrap returns the raycaster behind one built by New, or r itself.
func Unwrap(r Raycaster) Raycaster {
	if n, ok := r.(interface{ Unwrap() Raycaster }); ok {
		return n.Unwrap()
	}
	return r
}

// Names lists the registered raycasters, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for n := range factories {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Name reports a display name for r: the registry name for raycasters built
// by New, its own Name method when it has one, otherwise its type name.
func Name(r Raycaster) string {
	if n, ok := r.(interface{ Name() string }); ok {
		return n.Name()
	}
	name := fmt.Sprintf("%T", r)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
