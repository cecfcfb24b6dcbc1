package ports

type EnvironmentPort interface {
	Getenv(key string) string
	Setenv(key string, value string) error
	Environ() []string
}
