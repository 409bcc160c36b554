// Package assets sources the client's level catalog: the builtin campaign or
// a directory of Tiled maps, optionally watched for edits.
package assets

import (
	"github.com/automoto/bounce/shared/leveldata"
	log "github.com/sirupsen/logrus"
)

// LoadFunc produces a validated catalog.
type LoadFunc func() ([]leveldata.Level, error)

// CatalogLoader returns a LoadFunc for dir. An empty dir means the builtin
// campaign.
func CatalogLoader(dir string, limits leveldata.Limits) LoadFunc {
	return func() ([]leveldata.Level, error) {
		levels, err := leveldata.LoadCatalog(dir, limits)
		if err != nil {
			return nil, err
		}
		source := dir
		if source == "" {
			source = "builtin"
		}
		log.WithFields(log.Fields{
			"source": source,
			"levels": len(levels),
		}).Info("level catalog loaded")
		return levels, nil
	}
}
