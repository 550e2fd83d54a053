package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFiles sets the number of files on the board.
func (b *ConfigBuilder) WithFiles(files int) *ConfigBuilder {
	b.cfg.Board.Files = files
	return b
}

// WithRanks sets the number of ranks on the board.
func (b *ConfigBuilder) WithRanks(ranks int) *ConfigBuilder {
	b.cfg.Board.Ranks = ranks
	return b
}

// WithWorkers sets the number of query workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Query.Workers = n
	return b
}

// WithBufferSize sets the query channel buffer size.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Query.BufferSize = size
	return b
}
