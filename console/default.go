package console

import (
	"sync"
)

var (
	defaultOnce sync.Once
	defaultCon  *Console
)

// Default returns the process wide console shared by every device that
// is not handed one explicitly. It is created on first use and left
// closed until a device opens it.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultCon = New()
	})
	return defaultCon
}
