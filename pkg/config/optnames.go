package config

const (
	OptConnTimeout  = "connect-timeout"
	OptDatasetDir   = "dataset-dir"
	OptLoggingLevel = "log-level"
	OptVerbose      = "verbose"
	OptVideoDir     = "video-dir"
)
