package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	DatabaseMySQL  = "mysql"
	DatabaseSQLite = "sqlite"
)

// 请求链路
const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

const (
	ContentTypeYAML = "application/x-yaml"
	ContentTypeJSON = "application/json"
)

// 提交记录列表默认/最大条数
const (
	DefaultSubmissionLimit = 20
	MaxSubmissionLimit     = 100
)
