//nolint:ireturn
package dic

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

var ErrServiceAlreadyRegistered = errors.New("service already registered")

//nolint:gochecknoglobals
var (
	services   = make(map[string]any)
	servicesMu sync.RWMutex
)

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// LookupService returns the service registered for T, if any.
func LookupService[T any]() (T, bool) {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	service, exist := services[typeName[T]()]
	if !exist {
		var zero T
		return zero, false
	}
	return service.(T), true //nolint:forcetypeassert
}

func GetService[T any]() T {
	service, exist := LookupService[T]()
	if !exist {
		panic(errors.Errorf("service %s does not exist", typeName[T]()))
	}
	return service
}

// Register stores implementation as the service for T. The first
// registration wins so tests can override services before the container is
// built, later ones return ErrServiceAlreadyRegistered.
func Register[T any](implementation T) error {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	serviceName := typeName[T]()
	if _, exist := services[serviceName]; exist {
		return errors.Wrap(ErrServiceAlreadyRegistered, serviceName)
	}
	services[serviceName] = implementation
	return nil
}

func ResetContainer() {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	services = make(map[string]any, len(services))
}
