package pfp3

import "fmt"

// These constants follow the semantic versioning 2.0.0 spec (http://semver.org/).
const (
	major uint8 = 0
	minor uint8 = 2
	patch uint8 = 0
	meta        = "dev"
)

func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	if meta != "" {
		v = fmt.Sprintf("%s-%s", v, meta)
	}

	return v
}
