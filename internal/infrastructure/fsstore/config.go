package fsstore

type Config struct {
	Dir string `yaml:"dir"`
}
