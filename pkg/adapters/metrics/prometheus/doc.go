// Package prometheus records request metrics on a private registry and
// serves them on a listener separate from the application routes.
package prometheus
