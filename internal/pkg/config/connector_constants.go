package config

// LocalStorageType stores application documents on the local filesystem
const LocalStorageType = "local"

// S3StorageType stores application documents in an S3 compatible bucket (AWS S3, MinIO)
const S3StorageType = "s3"

// MemoryCacheType keeps cached lookups in process memory
const MemoryCacheType = "memory"

// RedisCacheType keeps cached lookups in a shared Redis instance
const RedisCacheType = "redis"
