package config

const (
	defaultLogFile           = "flipbook.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPort              = 8080
	defaultHost              = "0.0.0.0"
	defaultPublicURL         = "http://localhost:8080"
	defaultBucket            = "ebook-images"
	defaultWorkerPoolSize    = 2
	defaultMaxUploadSize     = 5
	defaultVersion           = "0.1.0"
)

// EnvSupabaseURL and EnvSupabaseKey select the remote backend endpoint and
// credential. Both are required at startup.
const (
	EnvSupabaseURL = "SUPABASE_URL"
	EnvSupabaseKey = "SUPABASE_SERVICE_KEY"
)

// Why use mapstructure instead of json: viper unmarshals with mapstructure
// field tags and does not recognize json tags.
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// PublicURL is the externally reachable base URL, used to build
	// shareable viewer links
	PublicURL string `mapstructure:"public_url"`
	// SupabaseURL is the endpoint of the remote record/object store
	SupabaseURL string `mapstructure:"supabase_url"`
	// SupabaseKey is the access credential for the remote store
	SupabaseKey string `mapstructure:"supabase_key"`
	// Bucket is the object storage bucket holding cover and page images
	Bucket string `mapstructure:"bucket"`
	// WorkerPoolSize is the number of background view-count workers
	WorkerPoolSize int `mapstructure:"worker_pool_size"`
	// MaxUploadSize is the maximum size of a single uploaded image, in MiB
	MaxUploadSize int64 `mapstructure:"max_upload_size"`
	// Version is the application version
	Version string `mapstructure:"version"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Port:              defaultPort,
		Host:              defaultHost,
		PublicURL:         defaultPublicURL,
		Bucket:            defaultBucket,
		WorkerPoolSize:    defaultWorkerPoolSize,
		MaxUploadSize:     defaultMaxUploadSize,
		Version:           defaultVersion,
	}
	return Opts
}
