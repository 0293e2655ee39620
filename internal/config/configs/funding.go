package configs

// Storage backends for campaigns and directories.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Funding configures the funding engine.
type Funding struct {
	// Storage selects the backend, "memory" or "postgres".
	Storage string `env:"STORAGE" envDefault:"memory"`
	// RootAccount is granted the Super Admin role on every start.
	RootAccount string `env:"ROOT_ACCOUNT,required,notEmpty"`
}
