package cluster

import (
	"github.com/mikhailzhukov/dtwcluster/clustererr"
	"github.com/mikhailzhukov/dtwcluster/distance"
)

func validate(cfg Config) error {
	switch {
	case cfg.KMin < 1:
		return clustererr.Wrap("cluster: KMin must be >= 1", clustererr.ErrInvalidConfig, nil)
	case cfg.KMax < cfg.KMin:
		return clustererr.Wrap("cluster: KMax must be >= KMin", clustererr.ErrInvalidConfig, nil)
	case cfg.MaxIter < 1:
		return clustererr.Wrap("cluster: MaxIter must be >= 1", clustererr.ErrInvalidConfig, nil)
	case cfg.SigmaGood <= 0:
		return clustererr.Wrap("cluster: SigmaGood must be > 0", clustererr.ErrInvalidConfig, nil)
	case cfg.SigmaOutline < cfg.SigmaGood:
		return clustererr.Wrap("cluster: SigmaOutline must be >= SigmaGood", clustererr.ErrInvalidConfig, nil)
	case cfg.DuplicateThreshold < 0:
		return clustererr.Wrap("cluster: DuplicateThreshold must be >= 0", clustererr.ErrInvalidConfig, nil)
	case cfg.MinCluster < 1:
		return clustererr.Wrap("cluster: MinCluster must be >= 1", clustererr.ErrInvalidConfig, nil)
	case cfg.MaxRecursion < 0:
		return clustererr.Wrap("cluster: MaxRecursion must be >= 0", clustererr.ErrInvalidConfig, nil)
	case cfg.BarycenterIter != nil && *cfg.BarycenterIter < 1:
		return clustererr.Wrap("cluster: BarycenterIter must be >= 1 when present", clustererr.ErrInvalidConfig, nil)
	case cfg.Distance.Tag == distance.DTWBanded && cfg.Distance.Window < 1:
		return clustererr.Wrap("cluster: DTWBanded requires Window >= 1", clustererr.ErrInvalidConfig, nil)
	default:
		return nil
	}
}
