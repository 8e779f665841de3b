package domain

// OperationService defines the business logic for the document operations.
// Every method is a single synchronous request: inputs in, one result
// document out, nothing retained afterwards.
type OperationService interface {
	ConvertImages(files []UploadedFile) ([]byte, error)
	Merge(files []UploadedFile) ([]byte, error)
	Compress(file UploadedFile) ([]byte, error)
	Split(file UploadedFile, pageRange string) ([]byte, error)
	Rotate(file UploadedFile, angle int, pageRange string) ([]byte, error)
	Secure(file UploadedFile, mode SecureMode, password string) ([]byte, error)
}

// DocumentEngine is the boundary to the external PDF library. All methods
// operate on files inside a request-scoped scratch directory owned by the
// caller.
type DocumentEngine interface {
	ImagesToPDF(imagePaths []string, outPath string) error
	Merge(inPaths []string, outPath string) error
	Optimize(inPath, outPath string) error
	CollectPages(inPath, outPath string, pages []int) error
	RotatePages(inPath, outPath string, angle int, pages []int) error
	Encrypt(inPath, outPath, password string) error
	Decrypt(inPath, outPath, password string) error
	PageCount(inPath string) (int, error)
	Validate(inPath string) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetTempPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAppTitle() string
	GetAllowedOrigins() []string
}
