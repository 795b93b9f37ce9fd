// Package storage provides storage backends for verdict records: an
// in-memory backend intended for testing and a SQLite backend for durable
// single-node deployments. Both implement the evidence.Storage interface and
// are safe for concurrent use.
package storage
