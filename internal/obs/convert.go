package obs

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/litescript/ls-hjd/internal/coords"
	"github.com/litescript/ls-hjd/internal/hjd"
	"github.com/litescript/ls-hjd/internal/logging"
)

// ErrNothingToConvert is returned when a series has no JD observations.
var ErrNothingToConvert = errors.New("no JD observations to convert")

// ConvertConfig configures ConvertToHJD.
type ConvertConfig struct {
	Workers int
	Logger  *logging.Logger
}

// DefaultConvertConfig returns the default conversion configuration.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Workers: runtime.NumCPU(),
		Logger:  logging.Discard(),
	}
}

// ConvertToHJD converts the JD observations of series to HJD in place and
// returns how many were converted. Observations already in HJD are left
// alone.
func ConvertToHJD(ctx context.Context, series *Series, conv hjd.Converter, ra coords.RAInfo, dec coords.DecInfo, cfg ConvertConfig) (int, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	log := cfg.Logger.Named("obs")

	var idx []int
	var jds []float64
	for i, o := range series.Observations {
		if o.Flavour == JD {
			idx = append(idx, i)
			jds = append(jds, o.Time)
		}
	}
	if len(jds) == 0 {
		return 0, ErrNothingToConvert
	}
	if skipped := series.Len() - len(jds); skipped > 0 {
		log.Info("skipping %d observations already in HJD", skipped)
	}

	pool := hjd.NewPool(cfg.Workers, cfg.Logger.Named("hjd"))
	hjds, err := pool.ConvertBatch(ctx, conv, ra, dec, jds)
	if err != nil {
		return 0, fmt.Errorf("convert to HJD: %w", err)
	}

	for k, i := range idx {
		series.Observations[i].Time = hjds[k]
		series.Observations[i].Flavour = HJD
	}
	log.Debug("converted %d observations (%s)", len(idx), conv.Epoch())
	return len(idx), nil
}
