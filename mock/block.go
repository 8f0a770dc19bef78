package mock

import "github.com/fwojciec/sitepdf"

var _ sitepdf.BlockFormatter = (*BlockFormatter)(nil)

// BlockFormatter is a mock implementation of sitepdf.BlockFormatter.
type BlockFormatter struct {
	FormatFn func(contentHTML string) ([]sitepdf.Block, error)
}

func (f *BlockFormatter) Format(contentHTML string) ([]sitepdf.Block, error) {
	return f.FormatFn(contentHTML)
}
