package projector

import (
	"runtime"
)

// ProjectorOptions configures a Projector
type ProjectorOptions struct {
	CacheSize      int   `yaml:"cache_size"`      // number of projected schemas to retain; defaults to 1024
	MaxConcurrency int64 `yaml:"max_concurrency"` // maximum number of projections ProjectAll runs at once; defaults to runtime.NumCPU()
	DisableCache   bool  `yaml:"disable_cache"`   // iff true, every projection is computed from scratch
}

// CloneProjectorOptions makes a copy of a ProjectorOptions
func CloneProjectorOptions(opts *ProjectorOptions) *ProjectorOptions {
	if opts == nil {
		return &ProjectorOptions{}
	}
	return &ProjectorOptions{
		CacheSize:      opts.CacheSize,
		MaxConcurrency: opts.MaxConcurrency,
		DisableCache:   opts.DisableCache,
	}
}

func ensureDefaultProjectorOptionsValues(opts *ProjectorOptions) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 1024
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = int64(runtime.NumCPU())
	}
}
