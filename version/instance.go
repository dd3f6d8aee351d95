package version

import "os"

// EnvInstanceName names the environment variable identifying a daemon instance.
const EnvInstanceName = "INVOKER_INSTANCE_NAME"

// InstanceName returns the instance name from the environment, falling back to the
// host name.
func InstanceName() string {
	if name := os.Getenv(EnvInstanceName); name != "" {
		return name
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		return "'" + EnvInstanceName + "' is empty"
	}

	return host
}
