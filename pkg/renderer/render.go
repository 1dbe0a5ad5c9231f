package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/hdr"
	"github.com/baronauta/RayTracer-sub001/pkg/log"
)

var logger = log.New("renderer")

// TracerFactory builds a per-worker radiance function around a private
// random generator. Workers never share a generator: the PCG is not safe
// for concurrent use and sharing would break reproducibility.
type TracerFactory func(pcg *core.PCG) func(core.Ray) core.Color

// Options configures a frame render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Seed            uint64
	NumWorkers      int
}

// Render traces a full frame. Rows are distributed across workers; each
// row gets a generator seeded deterministically from (seed, row), so a
// fixed seed reproduces identical imagery regardless of scheduling.
func Render(camera Camera, opts Options, factory TracerFactory) (*hdr.HdrImage, error) {
	// Validate the sample count up front
	if _, err := perfectSquareSide(opts.SamplesPerPixel); err != nil {
		return nil, err
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	camera.SetAspectRatio(float64(opts.Width) / float64(opts.Height))
	img := hdr.NewHdrImage(opts.Width, opts.Height)

	rows := make(chan int, opts.Height)
	for row := 0; row < opts.Height; row++ {
		rows <- row
	}
	close(rows)

	var rowsDone atomic.Int64
	stopProgress := startProgressLog(&rowsDone, opts.Height)
	defer stopProgress()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				// Sequence = row index keeps sample streams disjoint
				// and tied to the pixel, not to completion order
				pcg := core.NewPCG(opts.Seed, uint64(row))
				radiance := factory(pcg)
				tracer, err := NewImageTracer(img, camera, opts.SamplesPerPixel, pcg)
				if err != nil {
					// Validated above; a failure here is a defect
					panic(err)
				}
				for col := 0; col < opts.Width; col++ {
					tracer.RenderPixel(col, row, radiance)
				}
				rowsDone.Add(1)
			}
		}()
	}
	wg.Wait()

	return img, nil
}

// startProgressLog samples an atomic row counter once per second and
// reports progress; the returned function stops the reporter
func startProgressLog(rowsDone *atomic.Int64, totalRows int) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				completed := rowsDone.Load()
				logger.Infof("rendered %d/%d rows (%.0f%%)",
					completed, totalRows, 100*float64(completed)/float64(totalRows))
			}
		}
	}()
	return func() { close(done) }
}
