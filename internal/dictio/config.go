package dictio

import (
	"github.com/dictio-games/dictio/internal/database"
)

type Config struct {
	// Logging all engine guard decisions at debug level
	Debug bool `envconfig:"DICTIO_DEBUG" default:"false"`

	// Number of join-code lookups kept in the cache
	CacheSize int `envconfig:"DICTIO_CACHE_SIZE" default:"1024"`

	// Port on which the health check is launched
	Port string `envconfig:"DICTIO_PORT" default:"1234"`

	Db database.Config
}
