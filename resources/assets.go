package resources

import (
	"embed"
	"fmt"
	"sync"
)

const routineDir = "routine/"

//go:embed routine/*.yaml
var routineFS embed.FS

var routineCache sync.Map

// Routine returns the bytes of a bundled routine document.
func Routine(fileName string) ([]byte, error) {
	return loadResource(routineFS, routineDir+fileName, &routineCache)
}

// MustRoutine returns bundled routine bytes or panics on error.
func MustRoutine(fileName string) []byte {
	data, err := Routine(fileName)
	if err != nil {
		panic(err)
	}
	return data
}

func loadResource(fs embed.FS, path string, cache *sync.Map) ([]byte, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.([]byte), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	cache.Store(path, data)
	return data, nil
}
