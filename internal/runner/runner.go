package runner

import (
	"image"

	"github.com/pkg/errors"

	"github.com/Mavwarf/assetgen/internal/raster"
)

// Sink receives each asset as soon as it has been written.
type Sink func(raster.Asset)

// Save writes img as dir/name and reports the asset to emit.
func (emit Sink) Save(dir, name string, img image.Image) error {
	a, err := raster.Save(dir, name, img)
	if err != nil {
		return err
	}
	emit(a)
	return nil
}

// Step is one unit of a pipeline. Run writes zero or more assets and
// reports each through emit.
type Step struct {
	Name string
	Run  func(emit Sink) error
}

// Execute runs steps in order and stops at the first failure; later
// steps are skipped. A panic inside a step is recovered and reported as
// that step's error. The returned assets are everything written before
// the failure, in write order. emit may be nil.
func Execute(steps []Step, emit Sink) ([]raster.Asset, error) {
	var written []raster.Asset
	collect := func(a raster.Asset) {
		written = append(written, a)
		if emit != nil {
			emit(a)
		}
	}

	for i, step := range steps {
		if err := runStep(step, collect); err != nil {
			return written, errors.WithMessagef(err, "step %d (%s)", i+1, step.Name)
		}
	}
	return written, nil
}

func runStep(step Step, emit Sink) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	if err := step.Run(emit); err != nil {
		// Keep an existing stack; attach one to plain errors.
		if _, ok := err.(interface{ StackTrace() errors.StackTrace }); ok {
			return err
		}
		return errors.WithStack(err)
	}
	return nil
}
