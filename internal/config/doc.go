// Package config provides configuration management for the hello-app service.
//
// Configuration is loaded from an optional .env file and then from
// environment variables using the env package. Every value has a default
// suitable for a local development server.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.HTTPAddr())
package config
