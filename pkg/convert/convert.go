// Package convert implements the value-conversion chain applied to
// scalar content before it is escaped.
//
// Hosts register named converters at startup with Register. The
// process-wide chain is resolved once, on first use, from the optional
// conversions config file (see internal/config): the file lists
// registered names in application order. With no config file the chain
// is empty and conversion is a no-op.
//
// The resolved chain is memoized for the process lifetime. Reset and
// SetChain exist for tests and for hosts that prefer to skip file
// configuration entirely.
package convert

import (
	"sync"

	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/internal/errors"
	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

// Func transforms a content value. Converters run in registration
// order, each consuming the previous converter's output.
type Func = node.ConvertFunc

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{}

	chainMu     sync.Mutex
	chainLoaded bool
	chain       []Func
	chainErr    error
)

// Register makes a converter available under a name for the conversions
// config file to reference. Registering the same name twice replaces
// the earlier function. Registration must happen before first render of
// scalar content; later registrations do not affect a resolved chain.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Chain returns the process-wide conversion chain, resolving it from
// configuration on first call. The result (or the resolution error) is
// memoized for the process lifetime.
func Chain() ([]Func, error) {
	chainMu.Lock()
	defer chainMu.Unlock()
	if !chainLoaded {
		chain, chainErr = resolve()
		chainLoaded = true
	}
	return chain, chainErr
}

// resolve loads the configured converter names and looks each one up in
// the registry.
func resolve() ([]Func, error) {
	names, err := config.LoadConversions()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	fns := make([]Func, 0, len(names))
	for _, name := range names {
		fn, ok := registry[name]
		if !ok {
			return nil, errors.New("H003").WithDetail("converter %q is not registered", name)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

// Apply runs a value through the override chain if one is given, else
// through the process-wide chain. An empty chain returns the value
// unchanged.
func Apply(value any, override []Func) (any, error) {
	fns := override
	if fns == nil {
		var err error
		fns, err = Chain()
		if err != nil {
			return nil, err
		}
	}
	for _, fn := range fns {
		value = fn(value)
	}
	return value, nil
}

// SetChain replaces the process-wide chain, bypassing configuration.
// The configuration file is never consulted after SetChain.
func SetChain(fns ...Func) {
	chainMu.Lock()
	defer chainMu.Unlock()
	chain = fns
	chainErr = nil
	chainLoaded = true
}

// Reset discards the memoized chain so the next use resolves it again.
// Intended for tests.
func Reset() {
	chainMu.Lock()
	defer chainMu.Unlock()
	chain = nil
	chainErr = nil
	chainLoaded = false
}
