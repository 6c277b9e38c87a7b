package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultStoreDriver = "file"
	DefaultDataDir     = "./data"

	DefaultRedisAddr = "localhost:6379"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "gestionhotel"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultSeedDemoData = true

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// DefaultRoomTypes is the allowed room-category set when ROOM_TYPES is unset.
var DefaultRoomTypes = []string{"Simple", "Double", "Suite"}
