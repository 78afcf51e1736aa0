package pipeline

import (
	"github.com/matzehuels/tagcloud/pkg/errors"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
)

// Load reads the size list named by opts.Input into opts.Sizes. A center
// given in the file is used unless opts.Center is already set.
func Load(opts *Options) error {
	if opts.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	sl, err := pkgio.ImportSizes(opts.Input)
	if err != nil {
		return err
	}
	opts.Sizes = sl.Sizes
	if opts.Center == nil && sl.Center != nil {
		c := *sl.Center
		opts.Center = &c
	}
	return nil
}
