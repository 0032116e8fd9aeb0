// Package grpc serves the standard grpc.health.v1 service so an
// orchestrator can probe the process with a gRPC health check.
package grpc
