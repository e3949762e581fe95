package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the parse result for one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	mu      sync.Mutex
	entries = make(map[reflect.Type]*entry)

	defaultEnvLoaded sync.Once
)

// Load populates v from the environment. The first successful result for a
// type is cached and copied into v on later calls. Parse failures are not
// cached, so a corrected environment can be loaded again.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})

	e := lookup[T]()
	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		err := e.err
		forget[T](e)
		return err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it reads .env.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration value.
func ResetCache() {
	mu.Lock()
	entries = make(map[reflect.Type]*entry)
	mu.Unlock()
}

func lookup[T any]() *entry {
	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	e, ok := entries[t]
	if !ok {
		e = &entry{}
		entries[t] = e
	}
	return e
}

func forget[T any](e *entry) {
	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	if entries[t] == e {
		delete(entries, t)
	}
}
