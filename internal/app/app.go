package app

import (
	"bigsum/internal/domain"
	"bigsum/internal/server"
	sumsvc "bigsum/internal/services/sum"
)

// NewServer builds the bigsumd HTTP server from cfg. The daemon never records
// history; that is a per-user concern of the CLI.
func NewServer(cfg Config) *server.Server {
	var adder domain.Adder = sumsvc.New(sumsvc.Options{StrictGrouping: cfg.StrictGrouping})
	return server.New(adder)
}
