package file

import (
	"fmt"

	"github.com/arloliu/colf/internal/options"
)

// ReaderOption configures a Reader at construction time.
type ReaderOption = options.Option[*Reader]

// WithDecodeParallelism sets the number of goroutines used to decompress and
// decode column blocks after they have been read from the source.
//
// The read phase stays sequential regardless of this setting, since a single
// io.ReadSeeker cannot be seeked concurrently. Only the CPU-bound
// decompress-and-decode phase fans out. The default is 1 (fully sequential).
func WithDecodeParallelism(n int) ReaderOption {
	return options.New(func(r *Reader) error {
		if n < 1 {
			return fmt.Errorf("decode parallelism must be at least 1, got %d", n)
		}
		r.parallelism = n

		return nil
	})
}
