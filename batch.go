// seehuhn.de/go/tonecurve - tone curve adjustment for RGB images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tonecurve

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures [ProcessFrames].
type BatchOptions struct {
	// Workers is the maximal number of frames processed in parallel.
	// If Workers <= 0, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Progress, if not nil, is called after each finished frame with the
	// number of finished frames and the total number of frames.
	// Calls are serialised.
	Progress func(done, total int)
}

// ProcessFrames applies p to every frame and returns the results in the
// same order. The frames are processed in parallel, so p must be safe for
// concurrent use; a [*Filter] obtained from [Session.Filter] is.
//
// If ctx is cancelled, no further frames are started and the context's
// error is returned.
func ProcessFrames(ctx context.Context, p Processor, frames []image.Image, opts *BatchOptions) ([]*image.NRGBA, error) {
	var o BatchOptions
	if opts != nil {
		o = *opts
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	log := Logger()
	log.Info("batch started", "frames", len(frames), "workers", o.Workers)
	start := time.Now()

	out := make([]*image.NRGBA, len(frames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	var mu sync.Mutex
	done := 0
	for i, frame := range frames {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.Process(frame)
			if o.Progress != nil {
				mu.Lock()
				done++
				o.Progress(done, len(frames))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("batch finished", "frames", len(frames), "elapsed", time.Since(start))
	return out, nil
}
