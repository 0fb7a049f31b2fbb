package ext

import (
	"io"
	"os"
)

var (
	DefaultAmbassador = &ambassador{}
)

// Ambassador the ambassador to the outside "world". Wraps methods that touch the file system and hence make the code
// that use them hard to test.
type Ambassador interface {
	Open(name string) (io.ReadCloser, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type ambassador struct {
}

func (a *ambassador) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (a *ambassador) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
