package projector

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/semaphore"

	"github.com/go-sif/prune"
	"github.com/go-sif/prune/internal/util"
	"github.com/go-sif/prune/projection"
	"github.com/go-sif/prune/requested"
)

// Request is a single projection to perform
type Request struct {
	Schema     prune.Schema
	Requested  *requested.StructType
	FilterRefs projection.FieldIDSet
}

// cacheEntry is a successful projection. The fingerprint is compared on
// every hit, so that a colliding hash can never return another request's schema.
type cacheEntry struct {
	fingerprint string
	unchanged   bool // the projection returned its input schema
	result      prune.Schema
}

// Projector projects schemas on behalf of many concurrent callers, caching
// successful results. Failed projections are never cached.
type Projector struct {
	id     string
	opts   *ProjectorOptions
	logger log.Logger
	cache  *lru.Cache[uint64, *cacheEntry]

	// Metrics.
	projections *prometheus.CounterVec
	cacheHits   prometheus.Counter
}

// CreateProjector is a factory for Projectors
func CreateProjector(opts *ProjectorOptions, logger log.Logger, r prometheus.Registerer) (*Projector, error) {
	opts = CloneProjectorOptions(opts)
	ensureDefaultProjectorOptionsValues(opts)
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	cache, err := lru.New[uint64, *cacheEntry](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("Unable to initialize projection cache: %w", err)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Projector{
		id:     id.String(),
		opts:   opts,
		logger: log.With(logger, "projector", id.String()),
		cache:  cache,
		projections: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: "prune_projections_total",
			Help: "Total number of schema projections, by result.",
		}, []string{"result"}),
		cacheHits: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "prune_projection_cache_hits_total",
			Help: "Total number of schema projections served from the cache.",
		}),
	}, nil
}

// ID returns the unique id of this Projector
func (p *Projector) ID() string {
	return p.id
}

// Project projects a canonical schema to match a requested struct. See projection.Project.
func (p *Projector) Project(canonical prune.Schema, req *requested.StructType, filterRefs projection.FieldIDSet) (prune.Schema, error) {
	if canonical == nil || req == nil || p.opts.DisableCache {
		return p.project(canonical, req, filterRefs)
	}

	fp := fingerprint(canonical, req, filterRefs)
	key := xxhash.Sum64String(fp)
	if entry, ok := p.cache.Get(key); ok && entry.fingerprint == fp {
		p.cacheHits.Inc()
		p.projections.WithLabelValues("success").Inc()
		level.Debug(p.logger).Log("msg", "projection cache hit", "fingerprint", strconv.FormatUint(key, 16))
		if entry.unchanged {
			return canonical, nil
		}
		return entry.result, nil
	}

	result, err := p.project(canonical, req, filterRefs)
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, &cacheEntry{fingerprint: fp, unchanged: result == canonical, result: result})
	return result, nil
}

func (p *Projector) project(canonical prune.Schema, req *requested.StructType, filterRefs projection.FieldIDSet) (prune.Schema, error) {
	result, err := projection.Project(canonical, req, filterRefs)
	if err != nil {
		p.projections.WithLabelValues("failure").Inc()
		level.Warn(p.logger).Log("msg", "projection failed", "requested", describe(req), "err", err)
		return nil, err
	}
	p.projections.WithLabelValues("success").Inc()
	return result, nil
}

// ProjectAll runs many projections concurrently, at most MaxConcurrency at a
// time. Results are returned in request order. Requests which fail leave a
// nil result, and their errors are combined into the returned error. Requests
// not yet started when ctx is cancelled are not run.
func (p *Projector) ProjectAll(ctx context.Context, reqs []Request) ([]prune.Schema, error) {
	results := make([]prune.Schema, len(reqs))
	sem := semaphore.NewWeighted(p.opts.MaxConcurrency)
	var wg sync.WaitGroup
	var errLock sync.Mutex
	var multierr *multierror.Error

	for i := range reqs {
		if err := sem.Acquire(ctx, 1); err != nil {
			errLock.Lock()
			multierr = multierror.Append(multierr, fmt.Errorf("request %d not started: %w", i, err))
			errLock.Unlock()
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			res, err := p.Project(reqs[i].Schema, reqs[i].Requested, reqs[i].FilterRefs)
			if err != nil {
				errLock.Lock()
				multierr = multierror.Append(multierr, fmt.Errorf("request %d: %w", i, err))
				errLock.Unlock()
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	if err := multierr.ErrorOrNil(); err != nil {
		level.Warn(p.logger).Log("msg", "batch projection had failures", "requests", len(reqs), "failures", len(multierr.Errors), "errors", util.FormatMultiError(multierr.Errors))
		return results, err
	}
	return results, nil
}

// Purge empties the projection cache
func (p *Projector) Purge() {
	p.cache.Purge()
}

func describe(req *requested.StructType) string {
	if req == nil {
		return "<nil>"
	}
	return req.String()
}
