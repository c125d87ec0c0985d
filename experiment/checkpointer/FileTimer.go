package checkpointer

import (
	"fmt"
	"time"
)

// FileTimer returns a function which names files by appending the
// current time, in nanoseconds since January 1, 1970, to filename:
//
//	FileTimer("frames/step", ".png")() == "frames/step-1632950032000000000.png"
func FileTimer(filename, extension string) func() string {
	return func() string {
		stamp := time.Now().UnixNano()
		return fmt.Sprintf("%v-%d%v", filename, stamp, extension)
	}
}
