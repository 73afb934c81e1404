package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigHashTablePrefix = ConfigPrefix + delimiter + "hashtable"

	ConfigHashTableInitialSize = ConfigHashTablePrefix + delimiter + "initial_size"
	ConfigHashTableHasher      = ConfigHashTablePrefix + delimiter + "hasher"
	ConfigHashTableLogLevel    = ConfigHashTablePrefix + delimiter + "log_level"
)
